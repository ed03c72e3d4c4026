package render

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/hxo-dev/hxo/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes VNode trees to HTML. A Renderer holds no state
// between calls and may be shared.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

var defaultRenderer = NewRenderer(Config{})

// RenderToString renders node with the default configuration.
func RenderToString(node *vdom.VNode) (string, error) {
	return defaultRenderer.RenderToString(node)
}

// RenderComponentToString runs the component's setup once and renders a
// single pass of it. Nothing reactive is created.
func RenderComponentToString[S any](c vdom.Component[S]) (string, error) {
	if c.Render == nil {
		return "", fmt.Errorf("render: component %q has no render function", c.Name)
	}
	var state S
	if c.Setup != nil {
		state = c.Setup()
	}
	return RenderToString(c.Render(state))
}

// Fingerprint returns the xxhash of node's compact HTML. Trees that render
// the same markup share a fingerprint; event handlers do not contribute.
func Fingerprint(node *vdom.VNode) (uint64, error) {
	d := xxhash.New()
	if err := defaultRenderer.RenderToWriter(d, node); err != nil {
		return 0, err
	}
	return d.Sum64(), nil
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, EscapeText(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := WriteAttributes(w, node.Props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	switch node.Shape {
	case vdom.ChildrenText:
		if _, err := io.WriteString(w, EscapeText(node.Text)); err != nil {
			return err
		}

	case vdom.ChildrenNodes:
		hasBlockChildren := hasElementChild(node) && !vdom.IsInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			io.WriteString(w, "\n")
		}
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}
		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

func hasElementChild(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c != nil && c.Kind != vdom.KindText {
			return true
		}
	}
	return false
}

// WriteAttributes writes props as HTML attributes, in sorted key order, each
// preceded by a space. Event props and nil values are skipped.
func WriteAttributes(w io.Writer, props vdom.Props) error {
	for _, key := range slices.Sorted(maps.Keys(props)) {
		if vdom.IsEventProp(key) {
			continue
		}
		value, ok := FormatAttr(key, props[key])
		if !ok {
			continue
		}
		var err error
		if value == "" && vdom.IsBooleanAttribute(key) {
			_, err = io.WriteString(w, " "+key)
		} else {
			_, err = fmt.Fprintf(w, ` %s="%s"`, key, EscapeAttr(value))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatAttr converts a prop value to its attribute text. ok is false when
// the attribute should not be written: nil values and false boolean
// attributes. A true boolean attribute yields an empty value.
func FormatAttr(key string, value any) (s string, ok bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		if vdom.IsBooleanAttribute(key) {
			return "", v
		}
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
