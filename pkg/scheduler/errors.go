package scheduler

import (
	"errors"
	"fmt"
)

// ErrLoopClosed is returned by Loop.Do after the loop has stopped.
var ErrLoopClosed = errors.New("scheduler: loop closed")

// ErrLoopRunning is returned when Loop.Run is called twice.
var ErrLoopRunning = errors.New("scheduler: loop already running")

// ErrTaskPanicked wraps a panic recovered from a task submitted to a Loop.
var ErrTaskPanicked = errors.New("scheduler: task panicked")

// FlushError reports the job failure that aborted a flush.
type FlushError struct {
	// Err is the error returned by the failing job.
	Err error

	// Ran is the number of jobs started in the flush, the failing one included.
	Ran int

	// Abandoned is the number of queued jobs that did not run.
	Abandoned int
}

// Error implements the error interface.
func (e *FlushError) Error() string {
	return fmt.Sprintf("scheduler: flush aborted after %d job(s), %d abandoned: %v",
		e.Ran, e.Abandoned, e.Err)
}

// Unwrap returns the job error for errors.Is/As support.
func (e *FlushError) Unwrap() error {
	return e.Err
}
