package reactive

// Effect is a reactive side effect. It runs once when created and again,
// at the next micro-tick, whenever a signal it has read changes.
//
// Effect implements scheduler.Job so the scheduler can queue and
// deduplicate it directly.
type Effect struct {
	rt   *Runtime
	id   uint64
	fn   func() error
	runs int
}

// CreateEffect creates an effect and runs it synchronously. The effect stays
// registered even when the first run fails; that error is returned alongside
// it.
//
// Example:
//
//	reactive.CreateEffect(rt, func() error {
//	    fmt.Println("Count changed to:", count())
//	    return nil
//	})
func CreateEffect(rt *Runtime, fn func() error) (*Effect, error) {
	e := &Effect{
		rt: rt,
		id: nextID(),
		fn: fn,
	}
	return e, e.Run()
}

// ID returns the effect's unique identifier.
func (e *Effect) ID() uint64 {
	return e.id
}

// Runs returns how many times the effect body has been invoked.
func (e *Effect) Runs() int {
	return e.runs
}

// Run executes the effect body with e as the tracking context. The previous
// context is restored on return, including when the body fails or panics.
func (e *Effect) Run() error {
	prev := e.rt.setActive(e)
	defer e.rt.setActive(prev)

	e.runs++
	if e.fn == nil {
		return nil
	}
	return e.fn()
}
