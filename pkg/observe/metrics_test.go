package observe

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/hxo-dev/hxo/pkg/dom"
	"github.com/hxo-dev/hxo/pkg/scheduler"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsFlushDone(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.FlushDone(scheduler.FlushStats{Jobs: 3, Ran: 3, Start: time.Now(), Duration: time.Millisecond})
	m.FlushDone(scheduler.FlushStats{
		Jobs: 5,
		Ran:  2,
		Err:  &scheduler.FlushError{Err: errors.New("boom"), Ran: 2, Abandoned: 3},
	})

	if got := metricCounterValue(t, m.flushesTotal.WithLabelValues("ok")); got != 1 {
		t.Errorf("ok flushes = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.flushesTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("error flushes = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.jobsRun); got != 5 {
		t.Errorf("jobs run = %v, want 5", got)
	}
	if got := metricCounterValue(t, m.jobsAbandoned); got != 3 {
		t.Errorf("jobs abandoned = %v, want 3", got)
	}
	if got := metricHistogramCount(t, m.flushDuration); got != 2 {
		t.Errorf("duration samples = %d, want 2", got)
	}
}

func TestMetricsWithScheduler(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))
	s := scheduler.New(scheduler.WithObserver(m))

	noop := scheduler.NewJob(func() error { return nil })
	s.Enqueue(noop)
	s.Enqueue(noop)
	if err := s.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if got := metricCounterValue(t, m.jobsRun); got != 1 {
		t.Errorf("jobs run = %v, want 1 (deduplicated)", got)
	}
	if got := metricCounterValue(t, m.flushesTotal.WithLabelValues("ok")); got != 1 {
		t.Errorf("ok flushes = %v, want 1", got)
	}
}

func TestMetricsHostOps(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.HostOp(dom.OpCreateElement)
	m.HostOp(dom.OpCreateElement)
	m.HostOp(dom.OpSetTextContent)

	if got := metricCounterValue(t, m.hostOps.WithLabelValues("create_element")); got != 2 {
		t.Errorf("create_element = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.hostOps.WithLabelValues("set_text")); got != 1 {
		t.Errorf("set_text = %v, want 1", got)
	}
}

func TestMetricsDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(WithRegistry(reg))

	defer func() {
		if recover() == nil {
			t.Error("expected second registration to panic")
		}
	}()
	NewMetrics(WithRegistry(reg))
}
