package dom

import "errors"

var (
	// ErrNilNode is returned when mounting or patching a nil VNode.
	ErrNilNode = errors.New("dom: nil vnode")

	// ErrNoHandle is returned when patching a tree that was never mounted.
	ErrNoHandle = errors.New("dom: vnode has no host node")

	// ErrUnknownKind is returned for a VNode kind the patcher cannot realize.
	ErrUnknownKind = errors.New("dom: unknown vnode kind")

	// ErrInvalidHandler is returned when an event prop does not hold a
	// *vdom.Handler.
	ErrInvalidHandler = errors.New("dom: event prop is not a handler")

	// ErrNoRender is returned by RenderComponent for a component without a
	// render function.
	ErrNoRender = errors.New("dom: component has no render function")
)
