// Package vtest provides a headless output tree for testing components.
//
// Document is an in-memory host for the dom patcher. It keeps a log of every
// mutation so tests can assert exactly what a patch did, and it serializes
// its nodes to HTML for output assertions.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    doc := vtest.NewDocument()
//	    root := doc.NewElement("div")
//	    rt := reactive.NewRuntime()
//	    _, err := dom.RenderComponent(rt, dom.NewPatcher(doc), Counter, root)
//	    if err != nil {
//	        t.Fatalf("unexpected error: %v", err)
//	    }
//
//	    doc.Click(doc.QuerySelector(root, "button"))
//	    rt.Tick()
//	    vtest.ExpectHTML(t, root, "<button>1</button>")
//	}
//
// # Mutation Log
//
// Containers made with NewElement are not logged. Everything the patcher
// does through the host is:
//
//	doc.ResetMutations()
//	patcher.Patch(old, next, root)
//	if n := len(doc.Mutations()); n != 0 {
//	    t.Errorf("patch made %d mutations", n)
//	}
package vtest
