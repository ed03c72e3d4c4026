package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxo-dev/hxo/pkg/i18n"
	"github.com/hxo-dev/hxo/pkg/reactive"
	"github.com/hxo-dev/hxo/pkg/vdom"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(&app{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "tree.json", `{"tag": "div", "props": {"id": "test"}, "children": "hello"}`)

	out, err := execute(t, "render", tree)
	require.NoError(t, err)
	assert.Equal(t, "<div id=\"test\">hello</div>\n", out)

	out, err = execute(t, "render", "--hash", tree)
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 16)
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "render", filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "HXO-E022")

	bad := writeFile(t, dir, "bad.json", `{"tag": }`)
	_, err = execute(t, "render", bad)
	assert.ErrorContains(t, err, "HXO-E020")

	_, err = execute(t, "render")
	assert.Error(t, err)
}

func TestRenderCommandTranslates(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "tree.json", `{"tag": "p", "children": ["@greeting", " ", {"tag": "b", "children": "@nav.home"}]}`)
	msgs := writeFile(t, dir, "messages.json", `{
  "en": {"greeting": "Hello", "nav": {"home": "Home"}},
  "fr": {"greeting": "Bonjour", "nav": {"home": "Accueil"}}
}`)

	out, err := execute(t, "render", "--messages", msgs, "--locale", "fr", tree)
	require.NoError(t, err)
	assert.Equal(t, "<p>Bonjour <b>Accueil</b></p>\n", out)
}

func TestTranslateTree(t *testing.T) {
	rt := reactive.NewRuntime()
	tr, err := i18n.New(rt, i18n.Data{"en": {"a": "A"}})
	require.NoError(t, err)

	v := vdom.Div(vdom.Text("@a"), vdom.H("span", nil, "@missing"), vdom.Text("plain @a"))
	translateTree(v, tr)

	assert.Equal(t, "A", v.Children[0].Text)
	assert.Equal(t, "missing", v.Children[1].Text)
	assert.Equal(t, "plain @a", v.Children[2].Text)
}

func TestDiffTrees(t *testing.T) {
	old := vdom.Div(vdom.H("p", nil, "A"), vdom.H("p", nil, "B"))
	next := vdom.Div(vdom.H("p", nil, "A2"))

	res, err := diffTrees(old, next)
	require.NoError(t, err)
	assert.Equal(t, "<div><p>A</p><p>B</p></div>", res.Before)
	assert.Equal(t, "<div><p>A2</p></div>", res.After)
	require.Len(t, res.Mutations, 2)
	assert.Equal(t, "set_text", res.Mutations[0].Op)
	assert.Equal(t, "remove_child", res.Mutations[1].Op)
}

func TestPatchCommand(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.json", `{"tag": "ul", "children": [{"tag": "li", "children": "a"}]}`)
	newPath := writeFile(t, dir, "new.json", `{"tag": "ul", "children": [{"tag": "li", "children": "a"}, {"tag": "li", "children": "b"}]}`)

	out, err := execute(t, "patch", "--metrics", oldPath, newPath)
	require.NoError(t, err)
	assert.Contains(t, out, "create_element")
	assert.Contains(t, out, "host_ops_total")
	assert.Contains(t, out, "<ul><li>a</li><li>b</li></ul>")

	out, err = execute(t, "patch", "-q", oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>a</li><li>b</li></ul>\n", out)
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "-n", "5", "-w", "3", "-d", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "propagate: 3 * 2")
	assert.Contains(t, out, "render: 3 items")

	_, err = execute(t, "bench", "-n", "0")
	assert.Error(t, err)
}

func TestBenchPropagateRunsEveryChain(t *testing.T) {
	row, err := benchPropagate(benchOptions{iterations: 4, width: 3, depth: 2}, reactive.NewRuntime().Logger())
	require.NoError(t, err)
	assert.Equal(t, int64(4), row.stats.flushes)
	// Per write: 3 chains of 2 computeds plus 3 effects.
	assert.Equal(t, int64(4*(3*2+3)), row.stats.jobs)
	assert.Equal(t, 4, row.calc.Count)
}

func TestVersionCommand(t *testing.T) {
	_, err := execute(t, "version", "--short")
	assert.NoError(t, err)
}
