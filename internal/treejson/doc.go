// Package treejson reads and writes vdom trees as JSON.
//
// A node is one of:
//
//	"hello"                                   text node
//	{"text": "hello"}                         text node
//	{"fragment": [node, ...]}                 fragment
//	{"tag": "div", "props": {...}, "children": "hello"}       element, text shorthand
//	{"tag": "ul", "children": [node, ...]}                    element with children
//
// Prop values are JSON scalars, arrays or objects. Whole numbers decode as
// int. Event props ("on" prefix) cannot be expressed in a file and are
// rejected.
package treejson
