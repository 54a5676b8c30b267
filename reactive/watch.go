package reactive

import (
	"maps"
	"slices"
)

// Watcher is a handle over one or more watch effects.
type Watcher struct {
	runners []*EffectRunner
}

func (w *Watcher) Stop() {
	for _, r := range w.runners {
		r.Stop()
	}
}

func (w *Watcher) Stopped() bool {
	for _, r := range w.runners {
		if !r.Stopped() {
			return false
		}
	}
	return true
}

// Watch tracks getter and calls handler with the new and previous values
// whenever the result changes. The handler runs untracked and is not called
// for the initial value.
func Watch[T any](rt *Runtime, getter func() T, handler func(newValue, oldValue T)) (*Watcher, error) {
	r, err := watchEffect(rt, getter, handler, func(a, b T) bool { return sameValue(a, b) })
	if err != nil {
		return nil, err
	}
	return &Watcher{runners: []*EffectRunner{r}}, nil
}

// WatchKey watches a single key of obj.
func WatchKey(obj *Object, key string, handler func(newValue, oldValue any)) (*Watcher, error) {
	return Watch(obj.rt, func() any { return obj.Get(key) }, handler)
}

// WatchKeys watches several keys of obj, each with its own handler.
func WatchKeys(obj *Object, handlers map[string]func(newValue, oldValue any)) (*Watcher, error) {
	w := &Watcher{}
	for _, key := range slices.Sorted(maps.Keys(handlers)) {
		kw, err := WatchKey(obj, key, handlers[key])
		if err != nil {
			w.Stop()
			return nil, err
		}
		w.runners = append(w.runners, kw.runners...)
	}
	return w, nil
}

// WatchDeep watches everything reachable from getter's result through
// wrapped objects, arrays, refs and computeds. The handler fires when any
// of it changes, even if the top-level value is the same wrapper.
func WatchDeep(rt *Runtime, getter func() any, handler func(newValue, oldValue any)) (*Watcher, error) {
	type snapshot struct {
		value any
		sum   uint64
	}
	r, err := watchEffect(rt,
		func() snapshot {
			v := getter()
			return snapshot{value: v, sum: fingerprint(v)}
		},
		func(next, prev snapshot) { handler(next.value, prev.value) },
		func(a, b snapshot) bool { return a.sum == b.sum && sameValue(a.value, b.value) },
	)
	if err != nil {
		return nil, err
	}
	return &Watcher{runners: []*EffectRunner{r}}, nil
}

func watchEffect[T any](rt *Runtime, getter func() T, handler func(newValue, oldValue T), equal func(a, b T) bool) (*EffectRunner, error) {
	var (
		old    T
		primed bool
	)
	r, err := Effect(rt, func() error {
		next := getter()
		if !primed {
			old, primed = next, true
			return nil
		}
		if equal(next, old) {
			return nil
		}
		prev := old
		rt.Untrack(func() { handler(next, prev) })
		old = next
		return nil
	})
	if err != nil {
		if r != nil {
			r.Stop()
		}
		return nil, err
	}
	return r, nil
}
