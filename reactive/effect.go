package reactive

type ErrFn func() error

// EffectRunner is a live effect. It runs once on creation and again whenever
// a cell it read during its last run changes.
type EffectRunner struct {
	node
	fn       ErrFn
	cleanups []func()
	runs     int

	rerun          bool
	followUp       bool
	followUpQueued bool
}

// Effect runs fn immediately and subscribes it to everything it reads. The
// returned error is the error or panic of that first run; the runner is live
// either way.
func Effect(rt *Runtime, fn ErrFn) (*EffectRunner, error) {
	if rt.closed {
		return nil, ErrRuntimeClosed
	}

	e := &EffectRunner{
		node: rt.newNode(dirty),
		fn:   fn,
	}
	rt.effects.Add(e)
	rt.log.Debug("effect created", "effect", e.id)

	err := e.run()
	rt.flush()
	return e, err
}

func (e *EffectRunner) markDirty() {
	if e.stopped {
		return
	}
	if !e.running {
		e.state = dirty
	}
	e.rt.schedule(e)
}

func (e *EffectRunner) markCheck() {
	if e.stopped {
		return
	}
	if !e.running {
		if e.state != clean {
			return
		}
		e.state = check
	}
	e.rt.schedule(e)
}

// update is the scheduler's entry point. ran reports whether the body ran.
func (e *EffectRunner) update() (ran bool, err error) {
	if e.stopped || e.state == clean {
		return false, nil
	}

	if e.state == check {
		if err := e.pull(); err != nil {
			// keep the edges and go back to clean so the next
			// invalidation of a failed source schedules it again
			e.state = clean
			return false, &EffectError{EffectID: e.id, Err: err}
		}
		if e.state != dirty {
			e.state = clean
			return false, nil
		}
	}

	e.followUp, e.followUpQueued = e.followUpQueued, false
	defer func() { e.followUp = false }()

	if err := e.run(); err != nil {
		return true, &EffectError{EffectID: e.id, Err: err}
	}
	return true, nil
}

func (e *EffectRunner) pull() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	e.rt.pullSources(e)
	return nil
}

func (e *EffectRunner) run() (err error) {
	if e.stopped {
		return nil
	}
	rt := e.rt

	e.runCleanups()
	e.running = true
	rt.untrackAll(e)
	depth := rt.push(e)

	defer func() {
		rt.restore(depth)
		e.running = false
		e.runs++
		if r := recover(); r != nil {
			err = newPanicError(r)
		}

		if e.stopped {
			rt.untrackAll(e)
			e.rerun = false
			return
		}
		e.state = clean
		if e.rerun {
			e.rerun = false
			e.state = dirty
			if rt.enqueue(e) {
				e.followUpQueued = true
			}
		}
	}()

	rt.log.Debug("effect run", "effect", e.id, "run", e.runs+1)
	return e.fn()
}

func (e *EffectRunner) runCleanups() {
	if len(e.cleanups) == 0 {
		return
	}
	fns := e.cleanups
	e.cleanups = nil
	e.rt.Untrack(func() {
		for _, fn := range fns {
			fn()
		}
	})
}

// Stop detaches the effect from every cell and runs its cleanups. It is
// idempotent and safe to call from inside the effect's own body.
func (e *EffectRunner) Stop() {
	if e.stopped {
		return
	}
	e.stopped = true
	e.rt.untrackAll(e)
	e.rt.effects.Remove(e)
	e.runCleanups()
	e.rt.log.Debug("effect stopped", "effect", e.id, "runs", e.runs)
}

func (e *EffectRunner) Stopped() bool {
	return e.stopped
}

// Runs counts completed runs, failed ones included.
func (e *EffectRunner) Runs() int {
	return e.runs
}

// TrackAfter runs fn with e as the active subscriber, so reads made after
// the body returned still become dependencies of e. They last until the
// next run clears them.
func (e *EffectRunner) TrackAfter(fn func()) {
	if e.stopped {
		fn()
		return
	}
	depth := e.rt.push(e)
	defer e.rt.restore(depth)
	fn()
}

// OnCleanup registers fn to run before the active effect's next run and when
// it stops. Outside an effect it does nothing.
func (rt *Runtime) OnCleanup(fn func()) {
	e, ok := rt.active().(*EffectRunner)
	if !ok {
		return
	}
	if e.stopped {
		rt.Untrack(fn)
		return
	}
	e.cleanups = append(e.cleanups, fn)
}
