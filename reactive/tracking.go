package reactive

import "slices"

// push makes s the active subscriber and returns the depth to restore.
func (rt *Runtime) push(s subscriber) int {
	depth := len(rt.frames)
	rt.frames = append(rt.frames, s)
	return depth
}

func (rt *Runtime) restore(depth int) {
	if depth > len(rt.frames) {
		return
	}
	clear(rt.frames[depth:])
	rt.frames = rt.frames[:depth]
}

func (rt *Runtime) active() subscriber {
	if len(rt.frames) == 0 {
		return nil
	}
	return rt.frames[len(rt.frames)-1]
}

// track records an edge from the active subscriber to c. Reads with no
// active subscriber, or under PauseTracking, are inert.
func (rt *Runtime) track(c *cell) {
	sub := rt.active()
	if sub == nil {
		return
	}
	n := sub.subscriberNode()
	if n.stopped || !n.depSet.Add(c) {
		return
	}
	n.deps = append(n.deps, c)
	c.subscribe(sub)
}

// untrackAll removes every edge of s in both directions.
func (rt *Runtime) untrackAll(s subscriber) {
	n := s.subscriberNode()
	for _, c := range n.deps {
		c.unsubscribe(s)
	}
	clear(n.deps)
	n.deps = n.deps[:0]
	n.depSet.Clear()
}

// pullSources brings every computed s read during its last run up to date,
// stopping as soon as one of them turns s dirty.
func (rt *Runtime) pullSources(s subscriber) {
	n := s.subscriberNode()
	for _, c := range slices.Clone(n.deps) {
		if c.source == nil {
			continue
		}
		c.source.refresh()
		if n.state == dirty {
			return
		}
	}
}

// Untrack runs fn with dependency tracking suspended.
func (rt *Runtime) Untrack(fn func()) {
	rt.PauseTracking()
	defer rt.ResumeTracking()
	fn()
}

// PauseTracking suspends tracking until the matching ResumeTracking.
func (rt *Runtime) PauseTracking() {
	rt.frames = append(rt.frames, nil)
}

func (rt *Runtime) ResumeTracking() {
	if len(rt.frames) > 0 {
		rt.restore(len(rt.frames) - 1)
	}
}

// Tracking reports whether a read right now would record a dependency.
func (rt *Runtime) Tracking() bool {
	return rt.active() != nil
}
