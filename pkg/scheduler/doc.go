// Package scheduler provides the batching job queue behind the reactive core.
//
// Signal writes never re-run effects directly. They hand the affected
// effects to a Scheduler, which collects them into a deduplicated pending
// list and schedules exactly one flush for the current micro-tick. When the
// micro-tick boundary is reached the flush runs every pending job in
// insertion order, including jobs enqueued by earlier jobs in the same
// flush, so cascading updates settle before control returns.
//
// # Micro-ticks
//
// Go has no ambient microtask queue, so the Scheduler owns one. The owner
// of the scheduler reaches the micro-tick boundary explicitly:
//
//	s := scheduler.New()
//	s.Enqueue(job)   // schedules a flush
//	s.Enqueue(job)   // deduplicated, still one flush
//	err := s.Tick()  // drains microtasks; the flush runs here
//
// Run wraps one synchronous block followed by the checkpoint, which is the
// shape of an event-loop turn:
//
//	err := s.Run(func() error {
//	    count.Set(count.Peek() + 1)
//	    return nil
//	})
//
// # Failure Semantics
//
// A flush is all-or-nothing: the first job error aborts the remaining jobs
// of that flush and is returned by the Tick or Run that drove it, wrapped in
// a *FlushError. The pending list and the "flush scheduled" flag are reset
// in a deferred block, so the next Enqueue behaves normally. Aborted jobs are
// not retried.
//
// # Threading
//
// A Scheduler is not safe for concurrent use. Confine it to one goroutine;
// Loop does that for callers that produce work on other goroutines.
package scheduler
