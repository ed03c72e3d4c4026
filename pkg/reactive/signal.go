package reactive

import (
	"math"
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

// Getter reads a reactive value, subscribing the active effect.
type Getter[T any] func() T

// Setter writes a reactive value, notifying subscribers when it changed.
type Setter[T any] func(T)

// Signal is a reactive value container. Reading a signal's value inside an
// effect subscribes that effect; setting a different value enqueues every
// subscriber on the runtime's scheduler.
type Signal[T any] struct {
	rt    *Runtime
	id    uint64
	value T
	subs  subscribers

	// equal reports whether a write is a no-op. Defaults to defaultEquals.
	equal func(a, b T) bool
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](rt *Runtime, initial T) *Signal[T] {
	return &Signal[T]{
		rt:    rt,
		id:    nextID(),
		value: initial,
	}
}

// CreateSignal creates a signal and returns its getter and setter.
//
// Example:
//
//	count, setCount := reactive.CreateSignal(rt, 0)
//	setCount(count() + 1)
func CreateSignal[T any](rt *Runtime, initial T) (Getter[T], Setter[T]) {
	s := NewSignal(rt, initial)
	return s.Get, s.Set
}

// ID returns the signal's unique identifier.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

// Get returns the current value and subscribes the active effect, if any.
// Subscribing is idempotent.
func (s *Signal[T]) Get() T {
	if e := s.rt.active; e != nil {
		s.subs.add(e)
	}
	return s.value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set stores v. If v equals the current value nothing happens; otherwise
// every subscriber is enqueued, in subscription order.
func (s *Signal[T]) Set(v T) {
	eq := s.equal
	if eq == nil {
		eq = defaultEquals[T]
	}
	if eq(s.value, v) {
		return
	}
	s.value = v
	s.subs.notify(s.rt)
}

// Update sets the value to fn(current).
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// WithEquals replaces the equality used to detect no-op writes.
// It returns s for chaining.
func (s *Signal[T]) WithEquals(fn func(a, b T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// Subscribers returns the number of effects subscribed to the signal.
func (s *Signal[T]) Subscribers() int {
	return len(s.subs.order)
}

// subscribers is an insertion-ordered set of effects.
type subscribers struct {
	order []*Effect
	seen  mapset.Set[*Effect]
}

func (s *subscribers) add(e *Effect) {
	if s.seen == nil {
		s.seen = mapset.NewThreadUnsafeSet[*Effect]()
	}
	if s.seen.Contains(e) {
		return
	}
	s.seen.Add(e)
	s.order = append(s.order, e)
}

func (s *subscribers) notify(rt *Runtime) {
	// Enqueue never runs a job, so order is stable for the whole loop.
	for _, e := range s.order {
		rt.sched.Enqueue(e)
	}
}

// defaultEquals compares scalars, strings and pointers by value or identity
// and slices, maps, structs and arrays structurally. Functions never compare
// equal, and NaN equals NaN.
func defaultEquals[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}

	switch x := av.(type) {
	case int:
		y, ok := bv.(int)
		return ok && x == y
	case string:
		y, ok := bv.(string)
		return ok && x == y
	case bool:
		y, ok := bv.(bool)
		return ok && x == y
	case float64:
		y, ok := bv.(float64)
		return ok && (x == y || (math.IsNaN(x) && math.IsNaN(y)))
	case float32:
		y, ok := bv.(float32)
		return ok && (x == y || (math.IsNaN(float64(x)) && math.IsNaN(float64(y))))
	}

	ta := reflect.TypeOf(av)
	if ta != reflect.TypeOf(bv) {
		return false
	}
	switch ta.Kind() {
	case reflect.Func:
		return false
	case reflect.Slice, reflect.Map, reflect.Struct, reflect.Array:
		return reflect.DeepEqual(av, bv)
	default:
		return av == bv
	}
}
