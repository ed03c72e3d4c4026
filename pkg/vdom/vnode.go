package vdom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindText     Kind = iota // Plain text node
	KindFragment             // Grouping without wrapper
	KindElement              // <div>, <button>, etc.
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// ChildShape describes how an element holds its children.
type ChildShape uint8

const (
	ChildrenNone  ChildShape = iota // no children given
	ChildrenText                    // Text is the single text child
	ChildrenNodes                   // Children is the child sequence
)

// String returns the string representation of the ChildShape.
func (c ChildShape) String() string {
	switch c {
	case ChildrenNone:
		return "None"
	case ChildrenText:
		return "Text"
	case ChildrenNodes:
		return "Nodes"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     Kind       // Node type
	Tag      string     // Element tag name (e.g., "div")
	Props    Props      // Attributes and event handlers
	Text     string     // Text node content, or an element's text shorthand
	Children []*VNode   // Child nodes (elements and fragments)
	Shape    ChildShape // Element child shape; fragments are always ChildrenNodes

	// el is the live host node produced by mount or patch.
	el any
}

// Props holds attributes and event handlers.
type Props map[string]any

// El returns the host node recorded for v, or nil before mounting.
// Fragments record the empty text node that marks their end.
func (v *VNode) El() any {
	return v.el
}

// SetEl records the host node produced for v.
func (v *VNode) SetEl(el any) {
	v.el = el
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if IsEventProp(key) {
			return true
		}
	}
	return false
}

// SameType reports whether b can be patched onto a's host node: the kinds
// match and, for elements, so do the tags.
func SameType(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	return a.Kind != KindElement || a.Tag == b.Tag
}

// Count returns the number of nodes in the tree rooted at v. An element's
// text shorthand counts as one node.
func Count(v *VNode) int {
	if v == nil {
		return 0
	}
	n := 1
	if v.Kind == KindElement && v.Shape == ChildrenText {
		n++
	}
	for _, c := range v.Children {
		n += Count(c)
	}
	return n
}

// Component is a setup step producing reactive state plus a render function
// over that state. Setup may be nil, in which case Render receives the zero
// value of S.
type Component[S any] struct {
	Name   string
	Setup  func() S
	Render func(S) *VNode
}

// Func creates a stateless component from a render function.
func Func(render func() *VNode) Component[struct{}] {
	return Component[struct{}]{
		Render: func(struct{}) *VNode { return render() },
	}
}
