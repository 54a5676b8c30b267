package reactive

import "fmt"

// ComputedRef is a lazily evaluated, cached derivation. The getter runs on
// the first read and again on the first read after a dependency changed.
type ComputedRef[T any] struct {
	node
	self     *cell
	getter   func(oldValue T) T
	value    T
	hasValue bool
	equals   func(a, b T) bool
	// failed is set while the last refresh panicked. A failed computed keeps
	// forwarding invalidations so its readers retry.
	failed bool
}

type ComputedOption[T any] func(*ComputedRef[T])

// ComputedEquals replaces the equality used to decide whether a recomputed
// value wakes the computed's readers.
func ComputedEquals[T any](fn func(a, b T) bool) ComputedOption[T] {
	return func(c *ComputedRef[T]) {
		c.equals = fn
	}
}

// Computed creates a computed. The getter receives the previous value, or
// the zero value before the first successful run. A computed never schedules
// anything, so on a closed runtime it keeps working as a cached getter.
func Computed[T any](rt *Runtime, getter func(oldValue T) T, opts ...ComputedOption[T]) *ComputedRef[T] {
	c := &ComputedRef[T]{
		node:   rt.newNode(dirty),
		getter: getter,
	}
	c.self = &cell{owner: c, source: c}
	if rt.opts.computedEquality {
		c.equals = func(a, b T) bool { return sameValue(a, b) }
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns the current value, recomputing first if needed, and makes
// the computed a dependency of the active subscriber. A getter panic
// propagates to the caller and leaves the computed dirty with its previous
// value cached. The reader stays subscribed either way.
func (c *ComputedRef[T]) Value() T {
	c.checkCircular()
	defer c.rt.track(c.self)
	c.refresh()
	return c.value
}

// Get is Value with the getter's panic returned as a *PanicError.
func (c *ComputedRef[T]) Get() (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	return c.Value(), nil
}

// Peek is Value without tracking.
func (c *ComputedRef[T]) Peek() T {
	c.refresh()
	return c.value
}

// Dirty reports whether the next read may run the getter.
func (c *ComputedRef[T]) Dirty() bool {
	return c.state != clean
}

func (c *ComputedRef[T]) markDirty() {
	prev := c.state
	c.state = dirty
	if prev == clean || c.failed {
		c.self.notifyCheck()
	}
}

func (c *ComputedRef[T]) markCheck() {
	if c.state != clean && !c.failed {
		return
	}
	if c.state == clean {
		c.state = check
	}
	c.self.notifyCheck()
}

func (c *ComputedRef[T]) checkCircular() {
	if c.running {
		panic(fmt.Errorf("%w: computed %d read itself", ErrCircularDependency, c.id))
	}
}

func (c *ComputedRef[T]) refresh() {
	c.checkCircular()
	if c.state == clean {
		return
	}

	// cleared below unless pulling or computing panics
	c.failed = true
	if c.state == check {
		c.rt.pullSources(c)
		if c.state != dirty {
			c.state = clean
			c.failed = false
			return
		}
	}

	next := c.compute()
	c.failed = false
	changed := !c.hasValue || c.equals == nil || !c.equals(c.value, next)
	c.value, c.hasValue = next, true
	c.state = clean

	if changed {
		c.self.notify()
		c.rt.flush()
	}
}

func (c *ComputedRef[T]) compute() T {
	rt := c.rt
	c.running = true
	rt.untrackAll(c)
	depth := rt.push(c)
	defer func() {
		rt.restore(depth)
		c.running = false
	}()
	return c.getter(c.value)
}

func (c *ComputedRef[T]) anyValue() any {
	return c.Value()
}
