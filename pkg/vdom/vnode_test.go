package vdom

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindElement, "Element"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestHChildShapes(t *testing.T) {
	tests := []struct {
		name     string
		children any
		shape    ChildShape
		count    int
	}{
		{"nil", nil, ChildrenNone, 0},
		{"string", "hello", ChildrenText, 0},
		{"empty string", "", ChildrenText, 0},
		{"node", Text("a"), ChildrenNodes, 1},
		{"nil node", (*VNode)(nil), ChildrenNone, 0},
		{"slice", []*VNode{Text("a"), nil, Text("b")}, ChildrenNodes, 2},
		{"empty slice", []*VNode{}, ChildrenNodes, 0},
		{"unsupported", 42, ChildrenNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := H("div", nil, tt.children)
			if n.Kind != KindElement || n.Tag != "div" {
				t.Fatalf("H produced %v <%s>", n.Kind, n.Tag)
			}
			if n.Props == nil {
				t.Error("Props should never be nil")
			}
			if n.Shape != tt.shape {
				t.Errorf("Shape = %v, want %v", n.Shape, tt.shape)
			}
			if len(n.Children) != tt.count {
				t.Errorf("len(Children) = %d, want %d", len(n.Children), tt.count)
			}
		})
	}
}

func TestHTextShorthand(t *testing.T) {
	n := H("div", Props{"id": "test"}, "hello")
	if n.Text != "hello" {
		t.Errorf("Text = %q, want hello", n.Text)
	}
	if n.Props["id"] != "test" {
		t.Errorf("Props[id] = %v, want test", n.Props["id"])
	}
}

func TestFragment(t *testing.T) {
	f := Fragment(Text("a"), nil, "b", []*VNode{Text("c"), nil})
	if f.Kind != KindFragment {
		t.Fatalf("Kind = %v, want Fragment", f.Kind)
	}
	if f.Shape != ChildrenNodes {
		t.Errorf("Shape = %v, want Nodes", f.Shape)
	}
	if len(f.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(f.Children))
	}
	for i, want := range []string{"a", "b", "c"} {
		if f.Children[i].Text != want {
			t.Errorf("Children[%d].Text = %q, want %q", i, f.Children[i].Text, want)
		}
	}
}

func TestSameType(t *testing.T) {
	tests := []struct {
		name string
		a, b *VNode
		want bool
	}{
		{"same tag", Div(), Div(ID("x")), true},
		{"different tag", Div(), Span(), false},
		{"text and text", Text("a"), Text("b"), true},
		{"text and element", Text("a"), Div(), false},
		{"fragment and fragment", Fragment(), Fragment(Text("x")), true},
		{"fragment and element", Fragment(), Div(), false},
		{"nil and node", nil, Div(), false},
		{"nil and nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameType(tt.a, tt.b); got != tt.want {
				t.Errorf("SameType = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElRecordsHandle(t *testing.T) {
	n := Div()
	if n.El() != nil {
		t.Fatal("El() should be nil before mounting")
	}
	n.SetEl("host-node")
	if n.El() != "host-node" {
		t.Errorf("El() = %v, want host-node", n.El())
	}
}

func TestIsInteractive(t *testing.T) {
	if Div(ID("x")).IsInteractive() {
		t.Error("div without handlers should not be interactive")
	}
	if !Button(OnClick(func() {})).IsInteractive() {
		t.Error("button with onclick should be interactive")
	}
	if Text("x").IsInteractive() {
		t.Error("text nodes are never interactive")
	}
}

func TestCount(t *testing.T) {
	tree := Div(
		H("p", nil, "text"),
		Fragment(Text("a"), Text("b")),
	)
	// div, p, p's text, fragment, a, b
	if got := Count(tree); got != 6 {
		t.Errorf("Count = %d, want 6", got)
	}
	if Count(nil) != 0 {
		t.Error("Count(nil) should be 0")
	}
}

func TestFuncComponent(t *testing.T) {
	c := Func(func() *VNode { return Text("hi") })
	if c.Setup != nil {
		t.Error("Func should not set Setup")
	}
	if got := c.Render(struct{}{}); got.Text != "hi" {
		t.Errorf("Render().Text = %q, want hi", got.Text)
	}
}

func TestConditionals(t *testing.T) {
	n := Text("x")
	if If(true, n) != n || If(false, n) != nil {
		t.Error("If returned the wrong node")
	}
	other := Text("y")
	if IfElse(false, n, other) != other {
		t.Error("IfElse returned the wrong node")
	}
	called := false
	if When(false, func() *VNode { called = true; return n }) != nil || called {
		t.Error("When should not call fn when the condition is false")
	}

	items := Range([]string{"a", "", "c"}, func(s string, _ int) *VNode {
		if s == "" {
			return nil
		}
		return Li(s)
	})
	if len(items) != 2 {
		t.Errorf("Range produced %d nodes, want 2", len(items))
	}
}
