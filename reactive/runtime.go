package reactive

import (
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/xid"
)

// Runtime owns a dependency graph: the tracking stack, the scheduler queue
// and the identity map between raw containers and their wrappers.
type Runtime struct {
	id   xid.ID
	log  *slog.Logger
	opts options

	frames []subscriber

	batchDepth int
	flushing   bool
	queue      []*EffectRunner
	queued     mapset.Set[*EffectRunner]
	errs       []error

	identity *identityMap
	effects  mapset.Set[*EffectRunner]
	nextID   uint64
	closed   bool
}

func New(opts ...Option) *Runtime {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := xid.New()
	rt := &Runtime{
		id:       id,
		log:      o.logger.With("runtime", id.String()),
		opts:     o,
		queued:   mapset.NewThreadUnsafeSet[*EffectRunner](),
		identity: newIdentityMap(),
		effects:  mapset.NewThreadUnsafeSet[*EffectRunner](),
	}
	rt.log.Debug("runtime created",
		"reentrancy", o.reentrancy.String(),
		"writeEquality", o.writeEquality,
		"computedEquality", o.computedEquality,
	)
	return rt
}

func (rt *Runtime) ID() string {
	return rt.id.String()
}

// Logger returns the runtime's logger.
func (rt *Runtime) Logger() *slog.Logger {
	return rt.log
}

// Close stops every live effect and drops queued work. Values stay readable
// and writable, but nothing reacts to them anymore.
func (rt *Runtime) Close() {
	if rt.closed {
		return
	}
	rt.closed = true

	effects := rt.effects.ToSlice()
	for _, e := range effects {
		e.Stop()
	}
	clear(rt.queue)
	rt.queue = rt.queue[:0]
	rt.queued.Clear()
	rt.errs = nil
	rt.log.Debug("runtime closed", "stopped", len(effects))
}

func (rt *Runtime) Closed() bool {
	return rt.closed
}

// ActiveEffects is the number of effects created and not yet stopped.
func (rt *Runtime) ActiveEffects() int {
	return rt.effects.Cardinality()
}
