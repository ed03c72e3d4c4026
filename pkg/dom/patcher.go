package dom

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/hxo-dev/hxo/pkg/vdom"
)

// Patcher mounts and patches vdom trees on a Host.
//
// Every VNode that passes through Mount or Patch records its host node with
// SetEl. A fragment has no host node of its own; it records an empty text
// node placed after its children, which marks where new trailing children
// go.
type Patcher struct {
	host      Host
	logger    *slog.Logger
	observers []Observer
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithLogger sets the patcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Patcher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithObserver registers an observer notified of each host mutation.
func WithObserver(o Observer) Option {
	return func(p *Patcher) {
		if o != nil {
			p.observers = append(p.observers, o)
		}
	}
}

// NewPatcher creates a Patcher driving host.
func NewPatcher(host Host, opts ...Option) *Patcher {
	p := &Patcher{
		host:   host,
		logger: slog.Default().With("component", "dom"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if len(p.observers) > 0 {
		p.host = &observedHost{Host: host, observers: p.observers}
	}
	return p
}

// Mount realizes v and appends it to container.
func (p *Patcher) Mount(v *vdom.VNode, container Node) error {
	if v == nil {
		return ErrNilNode
	}
	nodes, err := p.create(v)
	if err != nil {
		return err
	}
	return p.insert(container, nodes, nil)
}

// Patch mutates the host nodes of the mounted tree old, whose top-level
// nodes live in container, until they match next. On return next owns the
// host nodes and old must not be patched again.
func (p *Patcher) Patch(old, next *vdom.VNode, container Node) error {
	if old == nil || next == nil {
		return ErrNilNode
	}
	if old.El() == nil {
		return ErrNoHandle
	}
	if !vdom.SameType(old, next) {
		return p.replace(old, next, container)
	}

	switch next.Kind {
	case vdom.KindText:
		next.SetEl(old.El())
		if old.Text == next.Text {
			return nil
		}
		return p.host.SetTextContent(old.El(), next.Text)

	case vdom.KindElement:
		el := old.El()
		next.SetEl(el)
		if err := p.patchProps(el, old.Props, next.Props); err != nil {
			return err
		}
		return p.patchChildren(el, old, next)

	case vdom.KindFragment:
		anchor := old.El()
		next.SetEl(anchor)
		return p.syncChildren(container, old.Children, next.Children, anchor)

	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, next.Kind)
	}
}

// create builds detached host nodes for v and returns its top-level nodes.
func (p *Patcher) create(v *vdom.VNode) ([]Node, error) {
	if v == nil {
		return nil, ErrNilNode
	}

	switch v.Kind {
	case vdom.KindText:
		n, err := p.host.CreateText(v.Text)
		if err != nil {
			return nil, err
		}
		v.SetEl(n)
		return []Node{n}, nil

	case vdom.KindElement:
		el, err := p.host.CreateElement(v.Tag)
		if err != nil {
			return nil, err
		}
		for _, key := range slices.Sorted(maps.Keys(v.Props)) {
			if err := p.addProp(el, key, v.Props[key]); err != nil {
				return nil, err
			}
		}
		switch v.Shape {
		case vdom.ChildrenText:
			if v.Text != "" {
				if err := p.host.SetTextContent(el, v.Text); err != nil {
					return nil, err
				}
			}
		case vdom.ChildrenNodes:
			if err := p.mountChildren(el, v.Children, nil); err != nil {
				return nil, err
			}
		}
		v.SetEl(el)
		return []Node{el}, nil

	case vdom.KindFragment:
		var nodes []Node
		for _, c := range v.Children {
			cn, err := p.create(c)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, cn...)
		}
		anchor, err := p.host.CreateText("")
		if err != nil {
			return nil, err
		}
		v.SetEl(anchor)
		return append(nodes, anchor), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, v.Kind)
	}
}

// replace swaps the host nodes of old for freshly built nodes of next.
func (p *Patcher) replace(old, next *vdom.VNode, container Node) error {
	p.logger.Debug("replace node",
		"old", describe(old),
		"new", describe(next))

	nodes, err := p.create(next)
	if err != nil {
		return err
	}

	if old.Kind != vdom.KindFragment && next.Kind != vdom.KindFragment {
		return p.host.ReplaceChild(container, nodes[0], old.El())
	}

	if err := p.insert(container, nodes, firstNode(old)); err != nil {
		return err
	}
	return p.remove(container, old)
}

func (p *Patcher) patchChildren(el Node, old, next *vdom.VNode) error {
	switch next.Shape {
	case vdom.ChildrenText:
		if old.Shape == vdom.ChildrenText && old.Text == next.Text {
			return nil
		}
		return p.host.SetTextContent(el, next.Text)

	case vdom.ChildrenNodes:
		if old.Shape == vdom.ChildrenNodes {
			return p.syncChildren(el, old.Children, next.Children, nil)
		}
		if err := p.host.SetTextContent(el, ""); err != nil {
			return err
		}
		return p.mountChildren(el, next.Children, nil)

	default:
		// No children given: the current content stays.
		return nil
	}
}

// syncChildren patches children by position. Extra next children are
// inserted before ref (appended when ref is nil); extra old children are
// removed.
func (p *Patcher) syncChildren(parent Node, old, next []*vdom.VNode, ref Node) error {
	common := min(len(old), len(next))
	for i := 0; i < common; i++ {
		if err := p.Patch(old[i], next[i], parent); err != nil {
			return err
		}
	}
	if len(next) > common {
		if err := p.mountChildren(parent, next[common:], ref); err != nil {
			return err
		}
	}
	for _, c := range old[common:] {
		if err := p.remove(parent, c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Patcher) mountChildren(parent Node, children []*vdom.VNode, ref Node) error {
	for _, c := range children {
		nodes, err := p.create(c)
		if err != nil {
			return err
		}
		if err := p.insert(parent, nodes, ref); err != nil {
			return err
		}
	}
	return nil
}

func (p *Patcher) insert(parent Node, nodes []Node, ref Node) error {
	for _, n := range nodes {
		var err error
		if ref == nil {
			err = p.host.AppendChild(parent, n)
		} else {
			err = p.host.InsertBefore(parent, n, ref)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// remove detaches every top-level host node of v from parent.
func (p *Patcher) remove(parent Node, v *vdom.VNode) error {
	for _, n := range topNodes(v) {
		if n == nil {
			return ErrNoHandle
		}
		if err := p.host.RemoveChild(parent, n); err != nil {
			return err
		}
	}
	return nil
}

// topNodes lists the host nodes v occupies in its parent, in order.
func topNodes(v *vdom.VNode) []Node {
	if v.Kind != vdom.KindFragment {
		return []Node{v.El()}
	}
	var out []Node
	for _, c := range v.Children {
		out = append(out, topNodes(c)...)
	}
	return append(out, v.El())
}

func firstNode(v *vdom.VNode) Node {
	if v.Kind == vdom.KindFragment && len(v.Children) > 0 {
		return firstNode(v.Children[0])
	}
	return v.El()
}

func describe(v *vdom.VNode) string {
	if v.Kind == vdom.KindElement {
		return "<" + v.Tag + ">"
	}
	return v.Kind.String()
}
