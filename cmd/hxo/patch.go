package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/hxo-dev/hxo/internal/treejson"
	"github.com/hxo-dev/hxo/pkg/dom"
	"github.com/hxo-dev/hxo/pkg/observe"
	"github.com/hxo-dev/hxo/pkg/vdom"
	"github.com/hxo-dev/hxo/pkg/vtest"
)

// patchResult is what `hxo patch` reports.
type patchResult struct {
	Mutations []vtest.Mutation
	Before    string
	After     string
}

// diffTrees mounts old into a headless document, resets the log, patches
// to next and returns the logged mutations.
func diffTrees(old, next *vdom.VNode, opts ...dom.Option) (*patchResult, error) {
	doc := vtest.NewDocument()
	root := doc.NewElement("root")
	p := dom.NewPatcher(doc, opts...)

	if err := p.Mount(old, root); err != nil {
		return nil, fmt.Errorf("mount: %w", err)
	}
	res := &patchResult{Before: vtest.InnerHTML(root)}
	doc.ResetMutations()

	if err := p.Patch(old, next, root); err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	res.Mutations = doc.Mutations()
	res.After = vtest.InnerHTML(root)
	return res, nil
}

func patchCmd(a *app) *cobra.Command {
	var (
		quiet   bool
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "patch OLD NEW",
		Short: "Show the host mutations that turn one tree into another",
		Long: `Mount OLD into a headless document, patch it to NEW and print
every host mutation the patcher made, followed by the resulting HTML.

Children are matched by position, so reordering shows up as content
changes rather than moves.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			old, err := treejson.ReadFile(args[0])
			if err != nil {
				return err
			}
			next, err := treejson.ReadFile(args[1])
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			opts := []dom.Option{dom.WithLogger(a.logger)}
			if metrics {
				m := observe.NewMetrics(
					observe.WithRegistry(reg),
					observe.WithNamespace(a.cfg.Metrics.Namespace),
				)
				opts = append(opts, dom.WithObserver(m))
			}

			res, err := diffTrees(old, next, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !quiet {
				writeMutations(out, res.Mutations)
			}
			if metrics {
				if err := writeMetrics(out, reg); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, res.After)
			if len(res.Mutations) == 0 {
				success("trees are identical")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the resulting HTML")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Also print the Prometheus host-op counters (mount included)")
	return cmd
}

func writeMutations(w io.Writer, ms []vtest.Mutation) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetTitle("Mutations")
	tbl.AppendHeader(table.Row{"#", "op", "target", "name", "value"})
	for i, m := range ms {
		tbl.AppendRow(table.Row{i + 1, m.Op, m.Target, m.Name, m.Value})
	}
	tbl.AppendFooter(table.Row{"", "total", len(ms), "", ""})
	tbl.Render()
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetTitle("Metrics")
	tbl.AppendHeader(table.Row{"metric", "labels", "value"})
	for _, f := range families {
		for _, m := range f.GetMetric() {
			labels := ""
			for _, l := range m.GetLabel() {
				labels += l.GetName() + "=" + l.GetValue() + " "
			}
			tbl.AppendRow(table.Row{f.GetName(), labels, m.GetCounter().GetValue()})
		}
	}
	tbl.Render()
	return nil
}
