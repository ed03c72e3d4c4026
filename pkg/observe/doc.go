// Package observe reports scheduler flushes and host mutations to
// Prometheus and OpenTelemetry.
//
// # Prometheus Metrics
//
// Metrics implements both scheduler.Observer and dom.Observer:
//
//	m := observe.NewMetrics(observe.WithNamespace("myapp"))
//	sched := scheduler.New(scheduler.WithObserver(m))
//	rt := reactive.NewRuntime(reactive.WithScheduler(sched))
//	p := dom.NewPatcher(host, dom.WithObserver(m))
//
// Metrics collected:
//   - hxo_flushes_total: flushes by status ("ok" or "error")
//   - hxo_flush_duration_seconds: flush duration histogram
//   - hxo_jobs_run_total: jobs started across all flushes
//   - hxo_jobs_abandoned_total: jobs dropped by aborted flushes
//   - hxo_host_ops_total: host mutations by op
//
// Expose them with promhttp as usual:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry
//
// Tracer records one span per flush, backdated to the flush start:
//
//	sched := scheduler.New(scheduler.WithObserver(observe.NewTracer()))
//
// The tracer uses the global tracer provider unless WithTracerProvider is
// given.
package observe
