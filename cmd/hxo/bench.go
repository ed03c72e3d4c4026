package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hxo-dev/hxo/pkg/dom"
	"github.com/hxo-dev/hxo/pkg/reactive"
	"github.com/hxo-dev/hxo/pkg/scheduler"
	"github.com/hxo-dev/hxo/pkg/vdom"
	"github.com/hxo-dev/hxo/pkg/vtest"
)

type benchOptions struct {
	iterations int
	width      int
	depth      int
}

// benchStats accumulates scheduler work across a benchmark.
type benchStats struct {
	flushes int64
	jobs    int64
}

func (s *benchStats) FlushDone(st scheduler.FlushStats) {
	s.flushes++
	s.jobs += int64(st.Ran)
}

type benchRow struct {
	name  string
	calc  *tachymeter.Metrics
	stats benchStats
}

func benchCmd(a *app) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark signal propagation and component re-rendering",
		Long: `Measure the time from a signal write to settled state.

propagate: one signal feeds WIDTH chains of DEPTH computed values, each
ending in an effect. Every iteration writes the signal inside one block.

render: a component rendering a WIDTH-item list into a headless
document is re-rendered and patched on every iteration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("iterations") {
				opts.iterations = a.cfg.Bench.Iterations
			}
			if !cmd.Flags().Changed("width") {
				opts.width = a.cfg.Bench.Width
			}
			if opts.iterations <= 0 || opts.width <= 0 || opts.depth <= 0 {
				return fmt.Errorf("iterations, width and depth must be positive")
			}

			quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
			prop, err := benchPropagate(opts, quiet)
			if err != nil {
				return err
			}
			rend, err := benchRender(opts, quiet)
			if err != nil {
				return err
			}
			writeBench(cmd.OutOrStdout(), opts, []*benchRow{prop, rend})
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 1000, "Writes per benchmark")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 10, "Chains or list items")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 10, "Computed values per chain")
	return cmd
}

func newBenchRuntime(logger *slog.Logger, stats *benchStats) *reactive.Runtime {
	sched := scheduler.New(scheduler.WithLogger(logger), scheduler.WithObserver(stats))
	return reactive.NewRuntime(reactive.WithScheduler(sched), reactive.WithLogger(logger))
}

func benchPropagate(opts benchOptions, logger *slog.Logger) (*benchRow, error) {
	row := &benchRow{name: fmt.Sprintf("propagate: %d * %d", opts.width, opts.depth)}
	rt := newBenchRuntime(logger, &row.stats)

	src := reactive.NewSignal(rt, 1)
	for range opts.width {
		last := reactive.Getter[int](src.Get)
		for range opts.depth {
			prev := last
			last = reactive.CreateComputed(rt, func() int { return prev() + 1 })
		}
		if _, err := reactive.CreateEffect(rt, func() error {
			last()
			return nil
		}); err != nil {
			return nil, err
		}
	}

	tach := tachymeter.New(&tachymeter.Config{Size: opts.iterations})
	row.stats = benchStats{}
	for range opts.iterations {
		start := time.Now()
		err := rt.Run(func() error {
			src.Set(src.Peek() + 1)
			return nil
		})
		if err != nil {
			return nil, err
		}
		tach.AddTime(time.Since(start))
	}
	row.calc = tach.Calc()
	return row, nil
}

func benchRender(opts benchOptions, logger *slog.Logger) (*benchRow, error) {
	row := &benchRow{name: fmt.Sprintf("render: %d items", opts.width)}
	rt := newBenchRuntime(logger, &row.stats)

	doc := vtest.NewDocument()
	root := doc.NewElement("root")
	p := dom.NewPatcher(doc, dom.WithLogger(logger))
	tick := reactive.NewSignal(rt, 0)

	list := vdom.Func(func() *vdom.VNode {
		n := tick.Get()
		return vdom.Ul(vdom.Range(make([]struct{}, opts.width), func(_ struct{}, i int) *vdom.VNode {
			return vdom.Li(vdom.Class("item"), vdom.Textf("%d:%d", i, n))
		}))
	})
	if _, err := dom.RenderComponent(rt, p, list, root); err != nil {
		return nil, err
	}

	tach := tachymeter.New(&tachymeter.Config{Size: opts.iterations})
	row.stats = benchStats{}
	for range opts.iterations {
		start := time.Now()
		err := rt.Run(func() error {
			tick.Update(func(n int) int { return n + 1 })
			return nil
		})
		if err != nil {
			return nil, err
		}
		tach.AddTime(time.Since(start))
		doc.ResetMutations()
	}
	row.calc = tach.Calc()
	return row, nil
}

func writeBench(w io.Writer, opts benchOptions, rows []*benchRow) {
	tbl := table.NewWriter()
	tbl.SetTitle(fmt.Sprintf("hxo bench (%s iterations)", humanize.Comma(int64(opts.iterations))))
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "flushes", "jobs"})
	for _, r := range rows {
		tbl.AppendRow(table.Row{
			r.name,
			r.calc.Time.Avg,
			r.calc.Time.Min,
			r.calc.Time.P75,
			r.calc.Time.P99,
			r.calc.Time.Max,
			humanize.Comma(r.stats.flushes),
			humanize.Comma(r.stats.jobs),
		})
	}
	tbl.Render()
}
