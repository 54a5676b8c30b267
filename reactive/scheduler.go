package reactive

import (
	"errors"
)

// StartBatch defers flushing until the matching EndBatch. Batches nest.
func (rt *Runtime) StartBatch() {
	rt.batchDepth++
}

// EndBatch closes a batch and flushes when it was the outermost one.
func (rt *Runtime) EndBatch() {
	if rt.batchDepth == 0 {
		panic("reactive: EndBatch without StartBatch")
	}
	rt.batchDepth--
	rt.flush()
}

// Batch runs fn and then flushes once, even if fn panics.
func (rt *Runtime) Batch(fn func()) {
	rt.StartBatch()
	defer rt.EndBatch()
	fn()
}

func (rt *Runtime) Batching() bool {
	return rt.batchDepth > 0
}

// Pending is the number of queued effects.
func (rt *Runtime) Pending() int {
	return len(rt.queue)
}

// schedule queues e at most once per flush.
func (rt *Runtime) schedule(e *EffectRunner) {
	if e.stopped || rt.closed {
		return
	}
	if e.running {
		rt.scheduleReentrant(e)
		return
	}
	rt.enqueue(e)
}

func (rt *Runtime) enqueue(e *EffectRunner) bool {
	if !rt.queued.Add(e) {
		return false
	}
	rt.queue = append(rt.queue, e)
	return true
}

func (rt *Runtime) scheduleReentrant(e *EffectRunner) {
	switch rt.opts.reentrancy {
	case ReentrancyRerun:
		if e.followUp {
			rt.log.Debug("dropped notification during follow-up run", "effect", e.id)
			return
		}
		e.rerun = true
	case ReentrancyDrop:
		rt.log.Debug("dropped reentrant notification", "effect", e.id)
	case ReentrancyError:
		rt.errs = append(rt.errs, &EffectError{EffectID: e.id, Err: ErrReentrantSchedule})
	}
}

// flush drains the queue unless a batch is open or a flush is already
// running further up the stack.
func (rt *Runtime) flush() {
	if rt.batchDepth > 0 || rt.flushing {
		return
	}

	rt.flushing = true
	ran := 0
	for len(rt.queue) > 0 {
		e := rt.queue[0]
		rt.queue[0] = nil
		rt.queue = rt.queue[1:]
		rt.queued.Remove(e)

		didRun, err := e.update()
		if err != nil {
			rt.errs = append(rt.errs, err)
		}
		if didRun {
			ran++
		}
	}
	rt.queue = rt.queue[:0]
	rt.flushing = false

	if ran > 0 {
		rt.log.Debug("flushed", "effects", ran)
	}
	if len(rt.errs) == 0 {
		return
	}
	err := errors.Join(rt.errs...)
	rt.errs = nil
	rt.report(err)
}

func (rt *Runtime) report(err error) {
	rt.log.Warn("flush failed", "error", err)
	if rt.opts.onError != nil {
		rt.opts.onError(err)
		return
	}
	panic(err)
}
