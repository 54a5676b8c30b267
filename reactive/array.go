package reactive

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Array is the reactive view of a *[]any. Each index, the length, and the
// shape (length changes seen by iteration) are separate cells. A compound
// mutation such as Push or Splice notifies every touched cell exactly once.
type Array struct {
	rt     *Runtime
	raw    *[]any
	cells  cellMap[int]
	length *cell
	shape  *cell

	mutating   int
	pending    []*cell
	pendingSet mapset.Set[*cell]
}

// WrapArray returns the wrapper for p, creating it on first use.
func (rt *Runtime) WrapArray(p *[]any) *Array {
	if p == nil {
		p = &[]any{}
	}
	return rt.identity.array(p, func() *Array {
		a := &Array{
			rt:         rt,
			raw:        p,
			pendingSet: mapset.NewThreadUnsafeSet[*cell](),
		}
		a.cells.owner = a
		a.length = &cell{owner: a}
		a.shape = &cell{owner: a}
		return a
	})
}

// Get returns the element at i, or nil when i is out of range.
func (a *Array) Get(i int) any {
	a.rt.track(a.cells.get(i))
	s := *a.raw
	if i < 0 || i >= len(s) {
		return nil
	}
	return a.rt.wrapValue(s[i])
}

func (a *Array) Peek(i int) any {
	s := *a.raw
	if i < 0 || i >= len(s) {
		return nil
	}
	return a.rt.wrapValue(s[i])
}

func (a *Array) Len() int {
	a.rt.track(a.length)
	return len(*a.raw)
}

// Values returns a wrapped copy of every element, tracking the shape and
// each index.
func (a *Array) Values() []any {
	a.rt.track(a.shape)
	n := len(*a.raw)
	out := make([]any, n)
	for i := range n {
		out[i] = a.Get(i)
	}
	return out
}

func (a *Array) Range(fn func(i int, v any) bool) {
	a.rt.track(a.shape)
	for i := 0; i < len(*a.raw); i++ {
		if !fn(i, a.Get(i)) {
			return
		}
	}
}

// Set stores v at i, growing the array with nils when i is past the end.
func (a *Array) Set(i int, v any) {
	if i < 0 {
		panic(fmt.Sprintf("reactive: index out of range [%d]", i))
	}
	v = ToRaw(v)
	a.mutate(func() {
		if i >= len(*a.raw) {
			a.resize(i + 1)
		}
		a.store(i, v)
	})
}

// SetLen truncates or extends the array with nils.
func (a *Array) SetLen(n int) {
	if n < 0 {
		panic(fmt.Sprintf("reactive: negative length %d", n))
	}
	a.mutate(func() { a.resize(n) })
}

// Push appends vals and returns the new length.
func (a *Array) Push(vals ...any) int {
	vals = rawValues(vals)
	a.mutate(func() {
		n := len(*a.raw)
		a.resize(n + len(vals))
		for i, v := range vals {
			a.store(n+i, v)
		}
	})
	return len(*a.raw)
}

// Pop removes and returns the last element, or nil when empty.
func (a *Array) Pop() any {
	s := *a.raw
	if len(s) == 0 {
		return nil
	}
	last := s[len(s)-1]
	a.mutate(func() { a.resize(len(s) - 1) })
	return a.rt.wrapValue(last)
}

// Shift removes and returns the first element, or nil when empty.
func (a *Array) Shift() any {
	s := *a.raw
	if len(s) == 0 {
		return nil
	}
	first := s[0]
	next := slices.Clone(s[1:])
	a.mutate(func() { a.replace(next) })
	return a.rt.wrapValue(first)
}

// Unshift prepends vals and returns the new length.
func (a *Array) Unshift(vals ...any) int {
	next := append(rawValues(vals), *a.raw...)
	a.mutate(func() { a.replace(next) })
	return len(next)
}

// Splice removes deleteCount elements from start, inserts items in their
// place and returns the removed elements. A negative start counts from the
// end; both arguments are clamped to the array.
func (a *Array) Splice(start, deleteCount int, items ...any) []any {
	s := *a.raw
	n := len(s)
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	deleteCount = min(max(deleteCount, 0), n-start)

	removed := slices.Clone(s[start : start+deleteCount])
	next := make([]any, 0, n-deleteCount+len(items))
	next = append(next, s[:start]...)
	next = append(next, rawValues(items)...)
	next = append(next, s[start+deleteCount:]...)
	a.mutate(func() { a.replace(next) })

	for i, v := range removed {
		removed[i] = a.rt.wrapValue(v)
	}
	return removed
}

func (a *Array) Reverse() {
	next := slices.Clone(*a.raw)
	slices.Reverse(next)
	a.mutate(func() { a.replace(next) })
}

// Sort sorts the raw elements stably with cmp.
func (a *Array) Sort(cmp func(x, y any) int) {
	next := slices.Clone(*a.raw)
	slices.SortStableFunc(next, cmp)
	a.mutate(func() { a.replace(next) })
}

func (a *Array) Clear() {
	a.mutate(func() { a.resize(0) })
}

// Raw returns the underlying slice pointer.
func (a *Array) Raw() *[]any {
	return a.raw
}

// Index reads i from a as a T, returning the zero value when it is out of
// range or of another type.
func Index[T any](a *Array, i int) T {
	v, _ := a.Get(i).(T)
	return v
}

// mutate runs op with notifications collected, then notifies each touched
// cell once and flushes.
func (a *Array) mutate(op func()) {
	a.mutating++
	defer func() {
		a.mutating--
		if a.mutating > 0 {
			return
		}
		pending := a.pending
		a.pending = nil
		a.pendingSet.Clear()
		for _, c := range pending {
			c.notify()
		}
		a.rt.flush()
	}()
	op()
}

func (a *Array) touch(c *cell) {
	if c == nil {
		return
	}
	if a.mutating == 0 {
		c.notify()
		return
	}
	if a.pendingSet.Add(c) {
		a.pending = append(a.pending, c)
	}
}

func (a *Array) store(i int, v any) {
	s := *a.raw
	if a.rt.opts.writeEquality && sameValue(s[i], v) {
		return
	}
	s[i] = v
	a.touch(a.cells.lookup(i))
}

func (a *Array) resize(n int) {
	s := *a.raw
	old := len(s)
	switch {
	case n == old:
		return
	case n < old:
		for i := n; i < old; i++ {
			a.touch(a.cells.lookup(i))
		}
		clear(s[n:old])
		*a.raw = s[:n]
	default:
		*a.raw = append(s, make([]any, n-old)...)
		for i := old; i < n; i++ {
			a.touch(a.cells.lookup(i))
		}
	}
	a.touch(a.length)
	a.touch(a.shape)
}

// replace rewrites the array to next, touching only the cells whose value
// or presence changed. next must not alias the raw slice.
func (a *Array) replace(next []any) {
	common := min(len(*a.raw), len(next))
	for i := range common {
		a.store(i, next[i])
	}
	if len(next) == len(*a.raw) {
		return
	}
	a.resize(len(next))
	for i := common; i < len(next); i++ {
		(*a.raw)[i] = next[i]
	}
}

func rawValues(vals []any) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = ToRaw(v)
	}
	return out
}
