package reactive

// Computed is a read-only signal whose value is produced by fn and kept up
// to date by an internal effect. Recomputation happens eagerly: at creation,
// then once per flush in which any dependency changed.
type Computed[T any] struct {
	sig    *Signal[T]
	effect *Effect
}

// NewComputed creates a computed value.
func NewComputed[T any](rt *Runtime, fn func() T) *Computed[T] {
	var zero T
	c := &Computed[T]{sig: NewSignal(rt, zero)}
	// The body never fails, so the initial-run error is always nil.
	c.effect, _ = CreateEffect(rt, func() error {
		c.sig.Set(fn())
		return nil
	})
	return c
}

// CreateComputed creates a computed value and returns its getter.
//
// Example:
//
//	doubled := reactive.CreateComputed(rt, func() int { return count() * 2 })
func CreateComputed[T any](rt *Runtime, fn func() T) Getter[T] {
	return NewComputed(rt, fn).Get
}

// Get returns the cached value and subscribes the active effect.
func (c *Computed[T]) Get() T {
	return c.sig.Get()
}

// Peek returns the cached value without subscribing.
func (c *Computed[T]) Peek() T {
	return c.sig.Peek()
}

// Recomputes returns how many times fn has run.
func (c *Computed[T]) Recomputes() int {
	return c.effect.Runs()
}

// WithEquals replaces the equality used to decide whether a recomputed
// value notifies subscribers.
func (c *Computed[T]) WithEquals(fn func(a, b T) bool) *Computed[T] {
	c.sig.WithEquals(fn)
	return c
}
