package reactive

import (
	"log/slog"

	"github.com/hxo-dev/hxo/pkg/scheduler"
)

// Runtime holds the tracking context for one logical thread: the scheduler
// that batches effect re-runs and the effect that is currently running.
//
// The active effect is saved and restored around every effect run, so the
// Go call stack is the tracking stack and nested effects compose.
type Runtime struct {
	sched  *scheduler.Scheduler
	active *Effect
	logger *slog.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithScheduler makes the runtime enqueue effects on s instead of a
// scheduler of its own. Runtimes sharing a scheduler share micro-ticks.
func WithScheduler(s *scheduler.Scheduler) Option {
	return func(rt *Runtime) {
		rt.sched = s
	}
}

// WithLogger sets the runtime logger. It is also handed to the runtime's own
// scheduler when WithScheduler is not used.
func WithLogger(logger *slog.Logger) Option {
	return func(rt *Runtime) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

// NewRuntime creates a Runtime.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		logger: slog.Default().With("component", "reactive"),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.sched == nil {
		rt.sched = scheduler.New(scheduler.WithLogger(rt.logger))
	}
	return rt
}

// Scheduler returns the scheduler effects are enqueued on.
func (rt *Runtime) Scheduler() *scheduler.Scheduler {
	return rt.sched
}

// Tick reaches the micro-tick boundary. See scheduler.Scheduler.Tick.
func (rt *Runtime) Tick(fns ...func()) error {
	return rt.sched.Tick(fns...)
}

// Run executes fn as one synchronous block followed by a tick.
func (rt *Runtime) Run(fn func() error) error {
	return rt.sched.Run(fn)
}

// Active returns the effect currently tracking reads, or nil.
func (rt *Runtime) Active() *Effect {
	return rt.active
}

// Logger returns the runtime logger.
func (rt *Runtime) Logger() *slog.Logger {
	return rt.logger
}

// setActive installs e as the tracking context and returns the previous one
// so it can be restored.
func (rt *Runtime) setActive(e *Effect) *Effect {
	old := rt.active
	rt.active = e
	return old
}

// Untracked runs fn without tracking signal reads as dependencies.
//
// Example:
//
//	reactive.Untracked(rt, func() {
//	    // Reading count here won't subscribe the running effect
//	    log.Println(count())
//	})
//
// For single signal reads, Signal.Peek is clearer.
func Untracked(rt *Runtime, fn func()) {
	old := rt.setActive(nil)
	defer rt.setActive(old)
	fn()
}
