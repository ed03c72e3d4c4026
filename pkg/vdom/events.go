package vdom

import (
	"fmt"
	"strings"
)

// Event is delivered to handlers by a host.
type Event struct {
	Type   string // "click", "input", ...
	Target any    // host node the listener is registered on
	Value  string // current value for input-like events
	Detail any    // host-specific payload
}

// Handler is an event listener value. Handlers compare by pointer, so two
// renders that build handlers from the same closure still produce distinct
// listeners.
type Handler struct {
	fn func(Event)
}

// NewHandler wraps fn as a Handler. fn can be func(), func(Event),
// func(string) (receives Event.Value) or a *Handler, which is returned as is.
// It panics on any other type, like an invalid template would fail to build.
func NewHandler(fn any) *Handler {
	switch f := fn.(type) {
	case *Handler:
		return f
	case func():
		return &Handler{fn: func(Event) { f() }}
	case func(Event):
		return &Handler{fn: f}
	case func(string):
		return &Handler{fn: func(e Event) { f(e.Value) }}
	default:
		panic(fmt.Sprintf("vdom: unsupported event handler type %T", fn))
	}
}

// Call invokes the handler. Calling a nil Handler does nothing.
func (h *Handler) Call(e Event) {
	if h == nil || h.fn == nil {
		return
	}
	h.fn(e)
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler *Handler
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: NewHandler(handler)}
}

// On creates a handler for an arbitrary event name.
func On(name string, handler any) EventHandler { return event(strings.ToLower(name), handler) }

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) EventHandler { return event("dblclick", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventHandler { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventHandler { return event("mouseleave", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventHandler { return event("keyup", handler) }

// OnInput handles input events.
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events.
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnSubmit handles submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// IsEventProp reports whether a prop name denotes an event handler: it
// starts with "on" in any case and names an event after it.
func IsEventProp(name string) bool {
	return len(name) > 2 && strings.EqualFold(name[:2], "on")
}

// EventName returns the listener name for an event prop: the name without
// its "on" prefix, lower-cased. "onClick" becomes "click".
func EventName(prop string) string {
	if !IsEventProp(prop) {
		return ""
	}
	return strings.ToLower(prop[2:])
}
