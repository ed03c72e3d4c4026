// Package vdom provides the tree model rendered by the dom and render
// packages.
//
// A VNode is a closed variant: a text node, a fragment, or an element. An
// element carries a tag, Props and either no children, a single string
// (shorthand for one text child), or an ordered sequence of VNodes. Trees are
// rebuilt on every render; the only field written after construction is the
// host handle recorded by the patcher.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// or with H, which takes children in the shorthand forms directly:
//
//	H("div", Props{"id": "test"}, "hello")
//
// # Events
//
// Props whose name starts with "on" are event handlers. The event name is the
// rest of the prop name, lower-cased: "onClick" listens for "click". Handlers
// built by the On* helpers are *Handler values and compare by identity, so a
// handler created on a new render replaces the old listener.
package vdom
