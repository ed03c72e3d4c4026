// Package render serializes vdom trees to HTML strings or streams.
//
// Rendering is a pure read of the tree: nothing is mounted and no host node
// is recorded. Element props become attributes in sorted order, event props
// are skipped, and text and attribute values are escaped.
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	html, err := render.RenderToString(node)
//
// To stream pretty-printed HTML to a writer:
//
//	renderer := render.NewRenderer(render.Config{Pretty: true})
//	err := renderer.RenderToWriter(w, node)
//
// # Components
//
// RenderComponentToString runs a component's setup and renders it once,
// which is how a server produces the first paint of a component.
//
// # Fingerprints
//
// Fingerprint hashes the compact HTML of a tree with xxhash. Equal
// fingerprints mean equal markup, so callers can skip work for unchanged
// output.
package render
