package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Job is a unit of deferred work. Jobs are deduplicated by identity, so
// implementations should be pointer types.
type Job interface {
	Run() error
}

// FuncJob adapts a function to the Job interface.
// Each FuncJob has its own identity regardless of the wrapped function.
type FuncJob struct {
	fn func() error
}

// NewJob wraps fn in a Job.
func NewJob(fn func() error) *FuncJob {
	return &FuncJob{fn: fn}
}

// Run implements Job.
func (j *FuncJob) Run() error {
	if j.fn == nil {
		return nil
	}
	return j.fn()
}

// FlushStats describes one completed (or aborted) flush.
type FlushStats struct {
	// Jobs is the length of the work list when the flush ended, including
	// jobs appended during the flush.
	Jobs int

	// Ran is the number of jobs that were started.
	Ran int

	Start    time.Time
	Duration time.Duration

	// Err is the *FlushError that aborted the flush, or nil.
	Err error
}

// Observer receives a notification after every flush.
type Observer interface {
	FlushDone(stats FlushStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(FlushStats)

// FlushDone implements Observer.
func (f ObserverFunc) FlushDone(stats FlushStats) { f(stats) }

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for flush diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver registers an observer notified after every flush.
func WithObserver(o Observer) Option {
	return func(s *Scheduler) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Scheduler is a deduplicating job queue flushed once per micro-tick.
type Scheduler struct {
	// queue is the pending work list, in insertion order.
	queue []Job

	// queued mirrors queue for O(1) membership checks.
	queued mapset.Set[Job]

	// flushScheduled is set while a flush microtask is queued or running.
	flushScheduled bool

	// microtasks run at the next checkpoint, FIFO.
	microtasks []func() error
	draining   bool

	logger    *slog.Logger
	observers []Observer
}

// New creates a Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		queued: mapset.NewThreadUnsafeSet[Job](),
		logger: slog.Default().With("component", "scheduler"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enqueue adds job to the pending list unless it is already present, and
// makes sure one flush is scheduled for the current micro-tick.
//
// A job enqueued while a flush is running is appended to that flush's work
// list. A job that already ran in the running flush is still a member of the
// list and is not added again.
func (s *Scheduler) Enqueue(job Job) {
	if job == nil || s.queued.Contains(job) {
		return
	}
	s.queued.Add(job)
	s.queue = append(s.queue, job)

	if !s.flushScheduled {
		s.flushScheduled = true
		s.queueMicrotask(s.flush)
	}
}

// Tick reaches the micro-tick boundary: each fn is queued as a microtask
// behind any flush that is already scheduled, then the microtask queue is
// drained. Tick returns once all of that work, including flushes scheduled
// by it, has completed. The returned error carries every flush failure
// observed during the drain.
//
// Called from inside a running job or microtask, Tick only queues fns; they
// run later in the drain that is already in progress.
func (s *Scheduler) Tick(fns ...func()) error {
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		cb := fn
		s.queueMicrotask(func() error {
			cb()
			return nil
		})
	}
	return s.drain()
}

// Run executes task as one synchronous block and then reaches the
// micro-tick boundary.
func (s *Scheduler) Run(task func() error) error {
	var taskErr error
	if task != nil {
		taskErr = task()
	}
	return errors.Join(taskErr, s.drain())
}

// Pending returns the number of jobs in the pending list.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Scheduled reports whether a flush is queued or running.
func (s *Scheduler) Scheduled() bool {
	return s.flushScheduled
}

func (s *Scheduler) queueMicrotask(task func() error) {
	s.microtasks = append(s.microtasks, task)
}

// drain runs microtasks until the queue is empty.
func (s *Scheduler) drain() error {
	if s.draining {
		return nil
	}
	s.draining = true
	defer func() { s.draining = false }()

	var errs []error
	for len(s.microtasks) > 0 {
		task := s.microtasks[0]
		s.microtasks[0] = nil
		s.microtasks = s.microtasks[1:]
		if err := task(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// flush runs the pending list by index so jobs appended during the loop run
// in the same pass.
func (s *Scheduler) flush() (err error) {
	start := time.Now()
	ran := 0

	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("scheduler: job panicked: %v", r)
		}

		total := len(s.queue)
		clear(s.queue)
		s.queue = s.queue[:0]
		s.queued.Clear()
		s.flushScheduled = false

		s.report(FlushStats{
			Jobs:     total,
			Ran:      ran,
			Start:    start,
			Duration: time.Since(start),
			Err:      err,
		})
		if r != nil {
			panic(r)
		}
	}()

	for i := 0; i < len(s.queue); i++ {
		ran++
		if jobErr := s.queue[i].Run(); jobErr != nil {
			return &FlushError{
				Err:       jobErr,
				Ran:       ran,
				Abandoned: len(s.queue) - i - 1,
			}
		}
	}
	return nil
}

func (s *Scheduler) report(stats FlushStats) {
	if stats.Err != nil {
		s.logger.Error("flush aborted",
			"ran", stats.Ran,
			"jobs", stats.Jobs,
			"error", stats.Err)
	} else {
		s.logger.Debug("flush complete",
			"jobs", stats.Jobs,
			"duration", stats.Duration)
	}
	for _, o := range s.observers {
		o.FlushDone(stats)
	}
}
