package reactive

import (
	"maps"
	"slices"
)

// Object is the reactive view of a map[string]any. Reads through it are
// tracked per key; writes go to the raw map and notify per key. Nested maps
// and *[]any values are wrapped on access.
type Object struct {
	rt    *Runtime
	raw   map[string]any
	cells cellMap[string]
	// shape changes when a key is added or removed.
	shape *cell
}

// Wrap returns the wrapper for m, creating it on first use. The same map
// always yields the same wrapper while that wrapper is reachable.
func (rt *Runtime) Wrap(m map[string]any) *Object {
	if m == nil {
		m = map[string]any{}
	}
	return rt.identity.object(m, func() *Object {
		o := &Object{rt: rt, raw: m}
		o.cells.owner = o
		o.shape = &cell{owner: o}
		return o
	})
}

func (o *Object) Get(key string) any {
	o.rt.track(o.cells.get(key))
	return o.rt.wrapValue(o.raw[key])
}

// Lookup is Get with a presence flag. It tracks the key, not the shape.
func (o *Object) Lookup(key string) (any, bool) {
	o.rt.track(o.cells.get(key))
	v, ok := o.raw[key]
	return o.rt.wrapValue(v), ok
}

// Peek reads key without tracking.
func (o *Object) Peek(key string) any {
	return o.rt.wrapValue(o.raw[key])
}

func (o *Object) Has(key string) bool {
	o.rt.track(o.cells.get(key))
	_, ok := o.raw[key]
	return ok
}

// Set stores the raw form of v. Wrapped values are unwrapped first.
func (o *Object) Set(key string, v any) {
	v = ToRaw(v)
	old, exists := o.raw[key]
	if exists && o.rt.opts.writeEquality && sameValue(old, v) {
		return
	}
	o.raw[key] = v

	if c := o.cells.lookup(key); c != nil {
		c.notify()
	}
	if !exists {
		o.shape.notify()
	}
	o.rt.flush()
}

func (o *Object) Delete(key string) {
	if _, exists := o.raw[key]; !exists {
		return
	}
	delete(o.raw, key)

	if c := o.cells.lookup(key); c != nil {
		c.notify()
	}
	o.shape.notify()
	o.rt.flush()
}

// Keys returns the keys in sorted order and tracks the object's shape.
func (o *Object) Keys() []string {
	o.rt.track(o.shape)
	return slices.Sorted(maps.Keys(o.raw))
}

func (o *Object) Len() int {
	o.rt.track(o.shape)
	return len(o.raw)
}

// Range visits every key in sorted order, tracking the shape and each key
// visited.
func (o *Object) Range(fn func(key string, v any) bool) {
	for _, k := range o.Keys() {
		if !fn(k, o.Get(k)) {
			return
		}
	}
}

// Raw returns the underlying map.
func (o *Object) Raw() map[string]any {
	return o.raw
}

// Field reads key from o as a T, returning the zero value when it is missing
// or of another type.
func Field[T any](o *Object, key string) T {
	v, _ := o.Get(key).(T)
	return v
}

// ToRaw returns the raw container behind a wrapper, or v itself.
func ToRaw(v any) any {
	switch v := v.(type) {
	case *Object:
		if v != nil {
			return v.raw
		}
	case *Array:
		if v != nil {
			return v.raw
		}
	}
	return v
}

// IsReactive reports whether v is a wrapper.
func IsReactive(v any) bool {
	switch v.(type) {
	case *Object, *Array:
		return true
	}
	return false
}

func (rt *Runtime) wrapValue(v any) any {
	switch raw := v.(type) {
	case map[string]any:
		if raw != nil {
			return rt.Wrap(raw)
		}
	case *[]any:
		if raw != nil {
			return rt.WrapArray(raw)
		}
	}
	return v
}

// Reactive wraps v if it is a map[string]any or *[]any and returns it
// unchanged otherwise.
func (rt *Runtime) Reactive(v any) any {
	if IsReactive(v) {
		return v
	}
	return rt.wrapValue(v)
}
