package vtest

import (
	"strings"
	"testing"

	"github.com/hxo-dev/hxo/pkg/render"
	"github.com/hxo-dev/hxo/pkg/vdom"
)

// OuterHTML serializes n and its descendants.
func OuterHTML(n *Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// InnerHTML serializes the children of n.
func InnerHTML(n *Node) string {
	var b strings.Builder
	for _, c := range n.children {
		writeNode(&b, c)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	if n.Type == TextNode {
		b.WriteString(render.EscapeText(n.Text))
		return
	}
	b.WriteString("<" + n.Tag)
	// Writes to a strings.Builder never fail.
	_ = render.WriteAttributes(b, n.props)
	b.WriteString(">")
	if vdom.IsVoidElement(n.Tag) {
		return
	}
	for _, c := range n.children {
		writeNode(b, c)
	}
	b.WriteString("</" + n.Tag + ">")
}

// ExpectHTML asserts that the children of container serialize to want.
//
// Example:
//
//	vtest.ExpectHTML(t, root, `<div id="test">hello</div>`)
func ExpectHTML(t *testing.T, container *Node, want string) {
	t.Helper()
	if got := InnerHTML(container); got != want {
		t.Errorf("expected HTML:\n%s\ngot:\n%s", want, got)
	}
}

// ExpectContains asserts that the children of container serialize to HTML
// containing expected.
func ExpectContains(t *testing.T, container *Node, expected string) {
	t.Helper()
	html := InnerHTML(container)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNoMutations asserts that nothing was logged since the last reset.
func ExpectNoMutations(t *testing.T, d *Document) {
	t.Helper()
	if m := d.Mutations(); len(m) != 0 {
		t.Errorf("expected no mutations, got %d:\n%s", len(m), formatMutations(m))
	}
}

func formatMutations(ms []Mutation) string {
	lines := make([]string, len(ms))
	for i, m := range ms {
		lines[i] = "  " + m.String()
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
