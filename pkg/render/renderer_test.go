package render

import (
	"strings"
	"testing"

	"github.com/hxo-dev/hxo/pkg/vdom"
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "element with text shorthand",
			node: vdom.H("div", vdom.Props{"id": "test"}, "hello"),
			want: `<div id="test">hello</div>`,
		},
		{
			name: "text node",
			node: vdom.Text("plain"),
			want: "plain",
		},
		{
			name: "nested children",
			node: vdom.Ul(vdom.Li("a"), vdom.Li("b")),
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "fragment concatenates children",
			node: vdom.Fragment(vdom.Span("x"), "y"),
			want: "<span>x</span>y",
		},
		{
			name: "no children",
			node: vdom.Div(vdom.Class("empty")),
			want: `<div class="empty"></div>`,
		},
		{
			name: "attributes are sorted",
			node: vdom.H("a", vdom.Props{"title": "t", "href": "/x", "class": "c"}, "link"),
			want: `<a class="c" href="/x" title="t">link</a>`,
		},
		{
			name: "event props are skipped",
			node: vdom.Button(vdom.OnClick(func() {}), vdom.Type("button"), "go"),
			want: `<button type="button">go</button>`,
		},
		{
			name: "void element",
			node: vdom.Input(vdom.Type("text"), vdom.Value("v")),
			want: `<input type="text" value="v">`,
		},
		{
			name: "boolean attributes",
			node: vdom.H("input", vdom.Props{"disabled": true, "checked": false, "data-on": true}, nil),
			want: `<input data-on="true" disabled>`,
		},
		{
			name: "nil props are skipped",
			node: vdom.H("p", vdom.Props{"title": nil, "lang": "en"}, ""),
			want: `<p lang="en"></p>`,
		},
		{
			name: "text is escaped",
			node: vdom.H("p", nil, `<script>alert("x")</script>`),
			want: `<p>&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;</p>`,
		},
		{
			name: "attributes are escaped",
			node: vdom.H("p", vdom.Props{"title": "a\"b\n"}, nil),
			want: `<p title="a&quot;b&#10;"></p>`,
		},
		{
			name: "numbers",
			node: vdom.H("td", vdom.Props{"colspan": 2, "data-ratio": 0.5}, nil),
			want: `<td colspan="2" data-ratio="0.5"></td>`,
		},
		{
			name: "nil node",
			node: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("RenderToString error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderToString =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderDoesNotMount(t *testing.T) {
	node := vdom.Div(vdom.Span("x"))
	if _, err := RenderToString(node); err != nil {
		t.Fatal(err)
	}
	if node.El() != nil || node.Children[0].El() != nil {
		t.Error("rendering must not record host nodes")
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := RenderToString(&vdom.VNode{Kind: vdom.Kind(42)})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestRenderPretty(t *testing.T) {
	r := NewRenderer(Config{Pretty: true})
	got, err := r.RenderToString(vdom.Div(vdom.P("one"), vdom.Span("two")))
	if err != nil {
		t.Fatal(err)
	}

	want := "<div>\n  <p>one</p>\n  <span>two</span>\n</div>\n"
	if got != want {
		t.Errorf("pretty output =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderComponentToString(t *testing.T) {
	setups := 0
	c := vdom.Component[int]{
		Name:  "Counter",
		Setup: func() int { setups++; return 3 },
		Render: func(n int) *vdom.VNode {
			return vdom.H("span", nil, strings.Repeat("*", n))
		},
	}

	got, err := RenderComponentToString(c)
	if err != nil {
		t.Fatal(err)
	}
	if got != "<span>***</span>" {
		t.Errorf("got %q", got)
	}
	if setups != 1 {
		t.Errorf("setup ran %d times, want 1", setups)
	}

	if _, err := RenderComponentToString(vdom.Component[int]{Name: "Broken"}); err == nil {
		t.Error("expected error for component without render")
	}
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(vdom.H("div", vdom.Props{"id": "x"}, "hi"))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Fingerprint(vdom.Div(vdom.ID("x"), vdom.OnClick(func() {}), "hi"))
	c, _ := Fingerprint(vdom.H("div", vdom.Props{"id": "y"}, "hi"))

	// H's text shorthand and a text child serialize identically.
	if a != b {
		t.Error("equal markup should share a fingerprint")
	}
	if a == c {
		t.Error("different markup should not share a fingerprint")
	}
}

func TestEscape(t *testing.T) {
	if got := EscapeText(`a & b < c`); got != "a &amp; b &lt; c" {
		t.Errorf("EscapeText = %q", got)
	}
	if got := EscapeText("plain"); got != "plain" {
		t.Errorf("EscapeText(plain) = %q", got)
	}
	if got := EscapeAttr("x\ty'"); got != "x&#9;y&#39;" {
		t.Errorf("EscapeAttr = %q", got)
	}
}
