package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment groups children without a wrapper element.
// Arguments can be: nil, *VNode, []*VNode, string.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0, len(children)),
		Shape:    ChildrenNodes,
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			node.Children = appendNodes(node.Children, v)
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// H creates an element from a tag, props and children. Children can be nil
// (no children), a string (text shorthand), a *VNode or a []*VNode. Nil
// entries in a slice are dropped. Other child values are ignored.
//
// H keeps props. Event props holding a function accepted by NewHandler are
// wrapped in place.
//
// Example:
//
//	H("div", Props{"id": "test"}, "hello")
func H(tag string, props Props, children any) *VNode {
	if props == nil {
		props = Props{}
	}
	for key, value := range props {
		props[key] = propValue(key, value)
	}
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: props,
	}

	switch v := children.(type) {
	case string:
		node.Text = v
		node.Shape = ChildrenText
	case *VNode:
		if v != nil {
			node.Children = []*VNode{v}
			node.Shape = ChildrenNodes
		}
	case []*VNode:
		node.Children = appendNodes(make([]*VNode, 0, len(v)), v)
		node.Shape = ChildrenNodes
	}

	return node
}

func appendNodes(dst, src []*VNode) []*VNode {
	for _, c := range src {
		if c != nil {
			dst = append(dst, c)
		}
	}
	return dst
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// propValue wraps plain funcs under event props as Handlers.
func propValue(key string, value any) any {
	if !IsEventProp(key) {
		return value
	}
	switch value.(type) {
	case func(), func(Event), func(string):
		return NewHandler(value)
	}
	return value
}
