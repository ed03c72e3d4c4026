package dom

import (
	"fmt"

	"github.com/hxo-dev/hxo/pkg/reactive"
	"github.com/hxo-dev/hxo/pkg/vdom"
)

// View is a component rendered into a container.
type View[S any] struct {
	name    string
	state   S
	tree    *vdom.VNode
	effect  *reactive.Effect
	renders int
}

// RenderComponent runs c.Setup once, then renders c inside an effect on rt.
// The first render is mounted into container; each later render, scheduled
// when a signal read during render changes, is patched against the tree
// before it.
//
// The error of the first render is returned with the view. Errors of later
// renders surface from the runtime's tick.
func RenderComponent[S any](rt *reactive.Runtime, p *Patcher, c vdom.Component[S], container Node) (*View[S], error) {
	if c.Render == nil {
		return nil, ErrNoRender
	}

	v := &View[S]{name: c.Name}
	if c.Setup != nil {
		v.state = c.Setup()
	}

	effect, err := reactive.CreateEffect(rt, func() error {
		return v.render(p, c.Render, container)
	})
	v.effect = effect
	return v, err
}

func (v *View[S]) render(p *Patcher, render func(S) *vdom.VNode, container Node) error {
	next := render(v.state)
	if next == nil {
		return v.wrap(ErrNilNode)
	}

	var err error
	if v.tree == nil {
		err = p.Mount(next, container)
	} else {
		err = p.Patch(v.tree, next, container)
	}
	if err != nil {
		return v.wrap(err)
	}

	v.tree = next
	v.renders++
	return nil
}

func (v *View[S]) wrap(err error) error {
	if v.name == "" {
		return fmt.Errorf("render component: %w", err)
	}
	return fmt.Errorf("render component %s: %w", v.name, err)
}

// State returns the value produced by setup.
func (v *View[S]) State() S {
	return v.state
}

// Tree returns the most recently mounted or patched tree.
func (v *View[S]) Tree() *vdom.VNode {
	return v.tree
}

// Renders returns the number of successful renders.
func (v *View[S]) Renders() int {
	return v.renders
}

// Effect returns the render effect.
func (v *View[S]) Effect() *reactive.Effect {
	return v.effect
}
