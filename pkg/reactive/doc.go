// Package reactive provides the fine-grained reactive core: signals,
// effects and computed values.
//
// Dependencies are tracked automatically at runtime. Reading a signal while
// an effect is running subscribes that effect to the signal; writing a
// different value to the signal hands every subscriber to the Runtime's
// scheduler, which re-runs them once at the next micro-tick.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	rt := reactive.NewRuntime()
//	count, setCount := reactive.CreateSignal(rt, 0)
//	value := count()  // subscribes the active effect, if any
//	setCount(5)       // enqueues subscribers
//
// Effect re-runs when a signal it read changes. It runs once, synchronously,
// when created:
//
//	reactive.CreateEffect(rt, func() error {
//	    fmt.Println("count is", count())
//	    return nil
//	})
//
// Computed[T] is a read-only signal kept up to date by an internal effect:
//
//	doubled := reactive.CreateComputed(rt, func() int { return count() * 2 })
//
// # Ticks
//
// Effects scheduled by writes run when the runtime reaches the micro-tick
// boundary, so many writes in one synchronous block produce one re-run:
//
//	setCount(1)
//	setCount(2)
//	err := rt.Tick()  // the effect runs once and observes 2
//
// # Subscriptions
//
// Subscriptions are never pruned. An effect that reads different signals on
// different runs stays subscribed to every signal it has ever read, and is
// re-run when any of them changes. Effects created inside another effect are
// created again each time the outer effect runs.
//
// # Threading
//
// A Runtime and everything created from it belong to one goroutine. Use one
// Runtime per logical thread, or drive a shared one through scheduler.Loop.
package reactive
