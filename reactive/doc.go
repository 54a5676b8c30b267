// Package reactive is a dependency-tracking and effect-scheduling engine.
//
// A Runtime owns one dependency graph. State lives in cells: one per key of a
// wrapped object, per index of a wrapped array, or per Ref. Subscribers
// (effects and computeds) record the cells they read while running, and a
// write to a cell re-runs every effect that read it.
//
//	rt := reactive.New()
//	state := rt.Wrap(map[string]any{"count": 0})
//
//	reactive.Effect(rt, func() error {
//		log.Printf("count is %d", reactive.Field[int](state, "count"))
//		return nil
//	})
//	state.Set("count", 1) // logs "count is 1"
//
// # Subscribers
//
// Effects run eagerly: once on creation and again after every change to a
// cell they read during their last run. Computeds are lazy: a change only
// marks them dirty, and the getter runs the next time the value is read. A
// computed whose recomputed value did not change does not wake its readers.
//
// Every run clears the subscriber's previous edges before reading again, so
// conditional reads only keep the dependencies of the branch that ran.
//
// # Batching
//
// Writes apply immediately. Outside a batch each write flushes the scheduler
// before returning. Inside Runtime.Batch the notified effects are queued,
// deduplicated, and run once, in scheduling order, when the outermost batch
// exits.
//
// # Tracking across suspension points
//
// Tracking follows the call stack of the goroutine driving the runtime. A
// read made from another goroutine, or after an effect body has returned, is
// not attributed to that effect. Use EffectRunner.TrackAfter to reopen the
// effect's tracking scope explicitly.
//
// # Lifetimes
//
// A subscriber stays referenced by the cells it read until Stop is called or
// the runtime is closed. The identity map from raw containers to wrappers
// holds weak references only.
//
// A Runtime is not safe for concurrent use.
package reactive
