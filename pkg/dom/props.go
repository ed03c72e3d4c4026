package dom

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hxo-dev/hxo/pkg/vdom"
)

// patchProps removes props missing from newProps, then writes every prop
// whose value changed. Keys are visited in sorted order.
func (p *Patcher) patchProps(el Node, oldProps, newProps vdom.Props) error {
	for _, key := range slices.Sorted(maps.Keys(oldProps)) {
		if _, ok := newProps[key]; ok {
			continue
		}
		if err := p.removeProp(el, key, oldProps[key]); err != nil {
			return err
		}
	}

	for _, key := range slices.Sorted(maps.Keys(newProps)) {
		nv := newProps[key]
		ov, had := oldProps[key]
		if had && vdom.PropEqual(ov, nv) {
			continue
		}
		if vdom.IsEventProp(key) {
			if had {
				if err := p.removeProp(el, key, ov); err != nil {
					return err
				}
			}
			if err := p.addProp(el, key, nv); err != nil {
				return err
			}
			continue
		}
		if nv == nil {
			if err := p.removeProp(el, key, ov); err != nil {
				return err
			}
			continue
		}
		if err := p.host.SetProperty(el, key, nv); err != nil {
			return err
		}
	}
	return nil
}

// addProp registers a listener for event props and sets anything else.
// Nil values are skipped.
func (p *Patcher) addProp(el Node, key string, value any) error {
	if vdom.IsEventProp(key) {
		h, err := handlerOf(key, value)
		if err != nil || h == nil {
			return err
		}
		return p.host.AddEventListener(el, vdom.EventName(key), h)
	}
	if value == nil {
		return nil
	}
	return p.host.SetProperty(el, key, value)
}

// removeProp undoes addProp for a prop that held value.
func (p *Patcher) removeProp(el Node, key string, value any) error {
	if vdom.IsEventProp(key) {
		h, err := handlerOf(key, value)
		if err != nil || h == nil {
			return err
		}
		return p.host.RemoveEventListener(el, vdom.EventName(key), h)
	}
	if value == nil {
		return nil
	}
	return p.host.RemoveProperty(el, key)
}

func handlerOf(key string, value any) (*vdom.Handler, error) {
	switch h := value.(type) {
	case nil:
		return nil, nil
	case *vdom.Handler:
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %s holds %T", ErrInvalidHandler, key, value)
	}
}
