// Package dom mounts vdom trees into a live output tree and patches them in
// place as they change.
//
// The output tree is reached through a Host, so the same Patcher drives a
// real display surface or the headless vtest.Document used in tests.
//
// # Patching
//
// Patch compares an old tree with a new one by position. A node whose type
// changed (text, fragment, or a different element tag) is rebuilt and takes
// the old node's place. A node of the same type keeps its host node: removed
// props are cleared, changed props are written, and children are synced by
// index. Extra new children are appended, and extra old children removed.
// Children are never matched by key, so reordering a list rewrites content
// instead of moving nodes.
//
// # Components
//
// RenderComponent runs a component's setup once and renders it inside an
// effect. The first run mounts; later runs, triggered by signals read during
// render, patch the previous tree.
package dom
