package treejson

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/hxo-dev/hxo/internal/errors"
	"github.com/hxo-dev/hxo/pkg/vdom"
)

// ErrInvalidNode is returned for JSON that is well formed but does not
// describe a node.
var ErrInvalidNode = stderrors.New("treejson: invalid node")

// NodeError reports an invalid node and its JSON path.
type NodeError struct {
	Path   string // e.g. "$.children[2]"
	Reason string
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap returns ErrInvalidNode.
func (e *NodeError) Unwrap() error {
	return ErrInvalidNode
}

func invalid(path, format string, args ...any) error {
	return &NodeError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// Decode parses one node from data.
func Decode(data []byte) (*vdom.VNode, error) {
	if !json.Valid(data) {
		// Unmarshal reports the *json.SyntaxError with its offset into data.
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	}
	return decodeNode(json.RawMessage(data), "$")
}

func decodeNode(raw json.RawMessage, path string) (*vdom.VNode, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, invalid(path, "empty node")
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return vdom.Text(s), nil
	case '{':
	default:
		return nil, invalid(path, "node must be a string or an object")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	text, isText := fields["text"]
	frag, isFrag := fields["fragment"]
	tag, isElem := fields["tag"]
	switch {
	case countTrue(isText, isFrag, isElem) != 1:
		return nil, invalid(path, `node needs exactly one of "tag", "text" or "fragment"`)
	case isText:
		if len(fields) != 1 {
			return nil, invalid(path, "text node has extra fields")
		}
		var s string
		if err := json.Unmarshal(text, &s); err != nil {
			return nil, invalid(path+".text", "must be a string")
		}
		return vdom.Text(s), nil
	case isFrag:
		if len(fields) != 1 {
			return nil, invalid(path, "fragment has extra fields")
		}
		children, err := decodeList(frag, path+".fragment")
		if err != nil {
			return nil, err
		}
		return vdom.Fragment(children), nil
	default:
		return decodeElement(tag, fields, path)
	}
}

func decodeElement(rawTag json.RawMessage, fields map[string]json.RawMessage, path string) (*vdom.VNode, error) {
	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil || tag == "" {
		return nil, invalid(path+".tag", "must be a non-empty string")
	}
	for k := range fields {
		if k != "tag" && k != "props" && k != "children" {
			return nil, invalid(path, "unknown field %q", k)
		}
	}

	props, err := decodeProps(fields["props"], path+".props")
	if err != nil {
		return nil, err
	}

	var children any
	if raw := bytes.TrimSpace(fields["children"]); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		if raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, err
			}
			children = s
		} else {
			list, err := decodeList(raw, path+".children")
			if err != nil {
				return nil, err
			}
			children = list
		}
	}
	return vdom.H(tag, props, children), nil
}

func decodeList(raw json.RawMessage, path string) ([]*vdom.VNode, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, invalid(path, "must be an array")
	}
	nodes := make([]*vdom.VNode, 0, len(items))
	for i, item := range items {
		n, err := decodeNode(item, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeProps(raw json.RawMessage, path string) (vdom.Props, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, invalid(path, "must be an object")
	}
	props := make(vdom.Props, len(m))
	for k, v := range m {
		if vdom.IsEventProp(k) {
			return nil, invalid(path+"."+k, "event handlers cannot be described in a tree file")
		}
		props[k] = normalize(v)
	}
	return props, nil
}

// normalize turns whole float64 numbers into int, recursively.
func normalize(v any) any {
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return int(x)
		}
	case []any:
		for i := range x {
			x[i] = normalize(x[i])
		}
	case map[string]any:
		for k := range x {
			x[k] = normalize(x[k])
		}
	}
	return v
}

func countTrue(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

// Encode serializes v in the format Decode reads. Event props are dropped.
func Encode(v *vdom.VNode) ([]byte, error) {
	x, err := encodeNode(v)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(x, "", "  ")
}

func encodeNode(v *vdom.VNode) (any, error) {
	if v == nil {
		return nil, stderrors.New("treejson: nil node")
	}
	switch v.Kind {
	case vdom.KindText:
		return v.Text, nil
	case vdom.KindFragment:
		children, err := encodeList(v.Children)
		if err != nil {
			return nil, err
		}
		return map[string]any{"fragment": children}, nil
	case vdom.KindElement:
		out := map[string]any{"tag": v.Tag}
		props := map[string]any{}
		for k, p := range v.Props {
			if !vdom.IsEventProp(k) {
				props[k] = p
			}
		}
		if len(props) > 0 {
			out["props"] = props
		}
		switch v.Shape {
		case vdom.ChildrenText:
			out["children"] = v.Text
		case vdom.ChildrenNodes:
			children, err := encodeList(v.Children)
			if err != nil {
				return nil, err
			}
			out["children"] = children
		}
		return out, nil
	}
	return nil, fmt.Errorf("treejson: unknown node kind %v", v.Kind)
}

func encodeList(nodes []*vdom.VNode) ([]any, error) {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		x, err := encodeNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// ReadFile decodes the node in path. Failures are *errors.Error values
// with the file location where one is known.
func ReadFile(path string) (*vdom.VNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.CodeTreeNotFound).Wrap(err)
		}
		return nil, errors.New(errors.CodeTreeSyntax).Wrap(err)
	}

	v, err := Decode(data)
	if err == nil {
		return v, nil
	}

	var syntax *json.SyntaxError
	var nodeErr *NodeError
	switch {
	case stderrors.As(err, &syntax):
		return nil, errors.New(errors.CodeTreeSyntax).Wrap(err).WithOffset(path, data, syntax.Offset)
	case stderrors.As(err, &nodeErr):
		return nil, errors.New(errors.CodeTreeInvalid).Wrap(err).
			WithDetail("In " + path + " at " + nodeErr.Path + ".").
			WithSuggestion("See `hxo render --help` for the tree file format")
	default:
		return nil, errors.New(errors.CodeTreeInvalid).Wrap(err).WithDetail("In " + path + ".")
	}
}
