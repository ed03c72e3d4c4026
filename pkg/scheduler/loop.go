package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

type loopTask struct {
	fn     func() error
	result chan error
}

// Loop confines a Scheduler, and everything driven by it, to the goroutine
// that calls Run. Other goroutines submit work with Do; each task runs as one
// synchronous block followed by the micro-tick checkpoint, so a caller of Do
// observes fully settled state when it returns.
type Loop struct {
	s *Scheduler

	tasks chan loopTask
	done  chan struct{}

	running   atomic.Bool
	closeOnce sync.Once
}

// NewLoop creates a Loop around s. The loop does nothing until Run is called.
func NewLoop(s *Scheduler) *Loop {
	return &Loop{
		s:     s,
		tasks: make(chan loopTask),
		done:  make(chan struct{}),
	}
}

// Scheduler returns the scheduler owned by the loop.
func (l *Loop) Scheduler() *Scheduler {
	return l.s
}

// Run processes submitted tasks until ctx is cancelled.
// After Run returns, Do fails with ErrLoopClosed.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.closeOnce.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-l.tasks:
			t.result <- l.execute(t.fn)
		}
	}
}

// Do runs fn on the loop goroutine and waits for it and the checkpoint that
// follows it. Cancelling ctx stops the wait; a task that was already
// accepted still runs to completion.
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	t := loopTask{fn: fn, result: make(chan error, 1)}

	select {
	case l.tasks <- t:
	case <-l.done:
		return ErrLoopClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// execute runs one task with panic recovery so a bad task cannot take the
// loop goroutine down.
func (l *Loop) execute(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.s.logger.Error("task panic",
				"panic", r,
				"stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()
	return l.s.Run(fn)
}
