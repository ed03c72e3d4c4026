package dom

import (
	"github.com/hxo-dev/hxo/pkg/vdom"
)

// Node is an opaque handle to a node in the host's output tree.
type Node = any

// Host is the output tree the patcher mutates. Each mutation returns an error
// so a host can reject operations that do not fit its tree.
type Host interface {
	CreateElement(tag string) (Node, error)
	CreateText(text string) (Node, error)

	AppendChild(parent, child Node) error
	// InsertBefore inserts child before ref. A nil ref appends.
	InsertBefore(parent, child, ref Node) error
	RemoveChild(parent, child Node) error
	ReplaceChild(parent, newChild, oldChild Node) error

	SetProperty(n Node, name string, value any) error
	RemoveProperty(n Node, name string) error
	AddEventListener(n Node, event string, h *vdom.Handler) error
	RemoveEventListener(n Node, event string, h *vdom.Handler) error

	// SetTextContent replaces all content of n with text.
	SetTextContent(n Node, text string) error
}

// Op identifies a host mutation.
type Op uint8

const (
	OpCreateElement Op = iota
	OpCreateText
	OpAppendChild
	OpInsertBefore
	OpRemoveChild
	OpReplaceChild
	OpSetProperty
	OpRemoveProperty
	OpAddEventListener
	OpRemoveEventListener
	OpSetTextContent
)

var opNames = [...]string{
	OpCreateElement:       "create_element",
	OpCreateText:          "create_text",
	OpAppendChild:         "append_child",
	OpInsertBefore:        "insert_before",
	OpRemoveChild:         "remove_child",
	OpReplaceChild:        "replace_child",
	OpSetProperty:         "set_property",
	OpRemoveProperty:      "remove_property",
	OpAddEventListener:    "add_listener",
	OpRemoveEventListener: "remove_listener",
	OpSetTextContent:      "set_text",
}

// String returns the snake_case name of the op, as used in metric labels.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Observer is notified after every successful host mutation.
type Observer interface {
	HostOp(op Op)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Op)

// HostOp implements Observer.
func (f ObserverFunc) HostOp(op Op) { f(op) }

// observedHost forwards to a Host and reports each successful mutation.
type observedHost struct {
	Host
	observers []Observer
}

func (h *observedHost) emit(op Op, err error) error {
	if err == nil {
		for _, o := range h.observers {
			o.HostOp(op)
		}
	}
	return err
}

func (h *observedHost) CreateElement(tag string) (Node, error) {
	n, err := h.Host.CreateElement(tag)
	return n, h.emit(OpCreateElement, err)
}

func (h *observedHost) CreateText(text string) (Node, error) {
	n, err := h.Host.CreateText(text)
	return n, h.emit(OpCreateText, err)
}

func (h *observedHost) AppendChild(parent, child Node) error {
	return h.emit(OpAppendChild, h.Host.AppendChild(parent, child))
}

func (h *observedHost) InsertBefore(parent, child, ref Node) error {
	return h.emit(OpInsertBefore, h.Host.InsertBefore(parent, child, ref))
}

func (h *observedHost) RemoveChild(parent, child Node) error {
	return h.emit(OpRemoveChild, h.Host.RemoveChild(parent, child))
}

func (h *observedHost) ReplaceChild(parent, newChild, oldChild Node) error {
	return h.emit(OpReplaceChild, h.Host.ReplaceChild(parent, newChild, oldChild))
}

func (h *observedHost) SetProperty(n Node, name string, value any) error {
	return h.emit(OpSetProperty, h.Host.SetProperty(n, name, value))
}

func (h *observedHost) RemoveProperty(n Node, name string) error {
	return h.emit(OpRemoveProperty, h.Host.RemoveProperty(n, name))
}

func (h *observedHost) AddEventListener(n Node, event string, handler *vdom.Handler) error {
	return h.emit(OpAddEventListener, h.Host.AddEventListener(n, event, handler))
}

func (h *observedHost) RemoveEventListener(n Node, event string, handler *vdom.Handler) error {
	return h.emit(OpRemoveEventListener, h.Host.RemoveEventListener(n, event, handler))
}

func (h *observedHost) SetTextContent(n Node, text string) error {
	return h.emit(OpSetTextContent, h.Host.SetTextContent(n, text))
}
