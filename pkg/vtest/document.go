package vtest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hxo-dev/hxo/pkg/vdom"
)

var (
	// ErrNotNode is returned when a host call receives a handle that is not
	// a *Node of this package.
	ErrNotNode = errors.New("vtest: not a vtest node")

	// ErrNotChild is returned when a reference node is not a child of the
	// given parent.
	ErrNotChild = errors.New("vtest: node is not a child of parent")

	// ErrNotElement is returned for element-only operations on text nodes.
	ErrNotElement = errors.New("vtest: node is not an element")
)

// NodeType distinguishes elements from text nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is a node of a Document.
type Node struct {
	Type NodeType
	Tag  string // element tag
	Text string // text node content

	props     vdom.Props
	listeners map[string][]*vdom.Handler
	parent    *Node
	children  []*Node
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Prop returns the value set for a property.
func (n *Node) Prop(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

// Props returns a copy of the node's properties.
func (n *Node) Props() vdom.Props {
	out := make(vdom.Props, len(n.props))
	for k, v := range n.props {
		out[k] = v
	}
	return out
}

// Listeners returns the number of listeners registered for event.
func (n *Node) Listeners(event string) int {
	return len(n.listeners[event])
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Text
	}
	var s string
	for _, c := range n.children {
		s += c.TextContent()
	}
	return s
}

func (n *Node) indexOf(child *Node) int {
	return slices.Index(n.children, child)
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	if i := n.parent.indexOf(n); i >= 0 {
		n.parent.children = slices.Delete(n.parent.children, i, i+1)
	}
	n.parent = nil
}

func (n *Node) label() string {
	if n.Type == TextNode {
		return "#text"
	}
	return "<" + n.Tag + ">"
}

// Mutation is one logged host operation.
type Mutation struct {
	Op     string // create_element, append_child, set_property, ...
	Target string // "<tag>" or "#text"
	Name   string // property or event name, or child label
	Value  string
}

// String formats the mutation for test failure output.
func (m Mutation) String() string {
	s := m.Op + " " + m.Target
	if m.Name != "" {
		s += " " + m.Name
	}
	if m.Value != "" {
		s += "=" + m.Value
	}
	return s
}

// Document is an in-memory output tree. It is not safe for concurrent use.
type Document struct {
	mutations []Mutation
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// NewElement creates a detached element to use as a mount container.
// It is not logged.
func (d *Document) NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: tag, props: vdom.Props{}}
}

// Mutations returns the mutation log.
func (d *Document) Mutations() []Mutation {
	return d.mutations
}

// ResetMutations clears the mutation log.
func (d *Document) ResetMutations() {
	d.mutations = nil
}

// Count returns how many logged mutations have the given op.
func (d *Document) Count(op string) int {
	n := 0
	for _, m := range d.mutations {
		if m.Op == op {
			n++
		}
	}
	return n
}

func (d *Document) log(op string, target *Node, name, value string) {
	d.mutations = append(d.mutations, Mutation{Op: op, Target: target.label(), Name: name, Value: value})
}

func asNode(v any) (*Node, error) {
	n, ok := v.(*Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("%w: %T", ErrNotNode, v)
	}
	return n, nil
}

func asElement(v any) (*Node, error) {
	n, err := asNode(v)
	if err != nil {
		return nil, err
	}
	if n.Type != ElementNode {
		return nil, ErrNotElement
	}
	return n, nil
}

// CreateElement implements dom.Host.
func (d *Document) CreateElement(tag string) (any, error) {
	n := d.NewElement(tag)
	d.log("create_element", n, "", "")
	return n, nil
}

// CreateText implements dom.Host.
func (d *Document) CreateText(text string) (any, error) {
	n := &Node{Type: TextNode, Text: text}
	d.log("create_text", n, "", text)
	return n, nil
}

// AppendChild implements dom.Host. A child that already has a parent is
// moved.
func (d *Document) AppendChild(parent, child any) error {
	p, err := asElement(parent)
	if err != nil {
		return err
	}
	c, err := asNode(child)
	if err != nil {
		return err
	}
	c.detach()
	c.parent = p
	p.children = append(p.children, c)
	d.log("append_child", p, c.label(), "")
	return nil
}

// InsertBefore implements dom.Host.
func (d *Document) InsertBefore(parent, child, ref any) error {
	if ref == nil {
		return d.AppendChild(parent, child)
	}
	p, err := asElement(parent)
	if err != nil {
		return err
	}
	c, err := asNode(child)
	if err != nil {
		return err
	}
	r, err := asNode(ref)
	if err != nil {
		return err
	}
	if r.parent != p {
		return ErrNotChild
	}
	c.detach()
	i := p.indexOf(r)
	p.children = slices.Insert(p.children, i, c)
	c.parent = p
	d.log("insert_before", p, c.label(), "")
	return nil
}

// RemoveChild implements dom.Host.
func (d *Document) RemoveChild(parent, child any) error {
	p, err := asElement(parent)
	if err != nil {
		return err
	}
	c, err := asNode(child)
	if err != nil {
		return err
	}
	if c.parent != p {
		return ErrNotChild
	}
	c.detach()
	d.log("remove_child", p, c.label(), "")
	return nil
}

// ReplaceChild implements dom.Host.
func (d *Document) ReplaceChild(parent, newChild, oldChild any) error {
	p, err := asElement(parent)
	if err != nil {
		return err
	}
	nc, err := asNode(newChild)
	if err != nil {
		return err
	}
	oc, err := asNode(oldChild)
	if err != nil {
		return err
	}
	if oc.parent != p {
		return ErrNotChild
	}
	nc.detach()
	i := p.indexOf(oc)
	p.children[i] = nc
	nc.parent = p
	oc.parent = nil
	d.log("replace_child", p, nc.label(), oc.label())
	return nil
}

// NextSibling returns the node after n in its parent, or nil.
func (d *Document) NextSibling(n *Node) *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.indexOf(n)
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// SetProperty implements dom.Host.
func (d *Document) SetProperty(node any, name string, value any) error {
	n, err := asElement(node)
	if err != nil {
		return err
	}
	n.props[name] = value
	d.log("set_property", n, name, fmt.Sprint(value))
	return nil
}

// RemoveProperty implements dom.Host.
func (d *Document) RemoveProperty(node any, name string) error {
	n, err := asElement(node)
	if err != nil {
		return err
	}
	delete(n.props, name)
	d.log("remove_property", n, name, "")
	return nil
}

// AddEventListener implements dom.Host.
func (d *Document) AddEventListener(node any, event string, h *vdom.Handler) error {
	n, err := asElement(node)
	if err != nil {
		return err
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]*vdom.Handler)
	}
	n.listeners[event] = append(n.listeners[event], h)
	d.log("add_listener", n, event, "")
	return nil
}

// RemoveEventListener implements dom.Host. Removing a listener that is not
// registered does nothing.
func (d *Document) RemoveEventListener(node any, event string, h *vdom.Handler) error {
	n, err := asElement(node)
	if err != nil {
		return err
	}
	i := slices.Index(n.listeners[event], h)
	if i < 0 {
		return nil
	}
	n.listeners[event] = slices.Delete(n.listeners[event], i, i+1)
	d.log("remove_listener", n, event, "")
	return nil
}

// SetTextContent implements dom.Host. On an element it replaces all
// children with a single text node, or with nothing for "".
func (d *Document) SetTextContent(node any, text string) error {
	n, err := asNode(node)
	if err != nil {
		return err
	}
	if n.Type == TextNode {
		n.Text = text
	} else {
		for _, c := range n.children {
			c.parent = nil
		}
		n.children = nil
		if text != "" {
			n.children = []*Node{{Type: TextNode, Text: text, parent: n}}
		}
	}
	d.log("set_text", n, "", text)
	return nil
}

// Dispatch calls the listeners registered on n for e.Type, in registration
// order, and returns how many ran. Target is set to n.
func (d *Document) Dispatch(n *Node, e vdom.Event) int {
	if n == nil {
		return 0
	}
	e.Target = n
	hs := slices.Clone(n.listeners[e.Type])
	for _, h := range hs {
		h.Call(e)
	}
	return len(hs)
}

// Click dispatches a click event to n.
func (d *Document) Click(n *Node) int {
	return d.Dispatch(n, vdom.Event{Type: "click"})
}

// Input dispatches an input event carrying value to n.
func (d *Document) Input(n *Node, value string) int {
	return d.Dispatch(n, vdom.Event{Type: "input", Value: value})
}

// QuerySelector returns the first element below root, in document order,
// whose tag is tag. root itself is not matched.
func (d *Document) QuerySelector(root *Node, tag string) *Node {
	all := d.QuerySelectorAll(root, tag)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QuerySelectorAll returns every element below root whose tag is tag.
func (d *Document) QuerySelectorAll(root *Node, tag string) []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.children {
			if c.Type == ElementNode && c.Tag == tag {
				out = append(out, c)
			}
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}
