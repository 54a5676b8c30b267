package reactive_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeClose(t *testing.T) {
	rt := newRuntime(t)
	a := reactive.Ref(rt, 1)
	runs := 0
	e, err := reactive.Effect(rt, func() error {
		runs++
		a.Value()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rt.ActiveEffects())

	rt.Close()
	rt.Close()
	assert.True(t, rt.Closed())
	assert.True(t, e.Stopped())
	assert.Equal(t, 0, rt.ActiveEffects())

	a.SetValue(2)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 2, a.Peek())

	_, err = reactive.Effect(rt, func() error { return nil })
	require.ErrorIs(t, err, reactive.ErrRuntimeClosed)
}

func TestComputedOnClosedRuntime(t *testing.T) {
	rt := newRuntime(t)
	a := reactive.Ref(rt, 1)
	rt.Close()

	calls := 0
	doubled := reactive.Computed(rt, func(oldValue int) int {
		calls++
		return a.Value() * 2
	})
	assert.Equal(t, 2, doubled.Value())
	assert.Equal(t, 2, doubled.Value())
	assert.Equal(t, 1, calls)

	a.SetValue(3)
	assert.Equal(t, 6, doubled.Value())
	assert.Equal(t, 2, calls)
}

func TestFlushCountsOnlyEffectsThatRan(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rt := reactive.New(reactive.WithLogger(logger))
	a := reactive.Ref(rt, 1)
	c := reactive.Computed(rt, func(oldValue int) int { return a.Value() + 1 })
	e, err := reactive.Effect(rt, func() error {
		c.Value()
		return nil
	})
	require.NoError(t, err)

	// the pull re-enqueues the effect, the second dequeue finds it clean
	buf.Reset()
	a.SetValue(2)
	assert.Equal(t, 2, e.Runs())
	assert.Contains(t, buf.String(), "effects=1")
	assert.NotContains(t, buf.String(), "effects=2")

	// pulled but unchanged, nothing ran
	buf.Reset()
	parity := reactive.Computed(rt, func(oldValue int) int { return a.Value() % 2 })
	_, err = reactive.Effect(rt, func() error {
		parity.Value()
		return nil
	})
	require.NoError(t, err)
	buf.Reset()
	a.SetValue(4)
	assert.Equal(t, 3, e.Runs())
	assert.Equal(t, 1, strings.Count(buf.String(), "msg=flushed"))
	assert.Contains(t, buf.String(), "effects=1")
}

func TestRuntimeLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rt := reactive.New(reactive.WithLogger(logger))
	a := reactive.Ref(rt, 1)
	_, err := reactive.Effect(rt, func() error {
		a.Value()
		return nil
	})
	require.NoError(t, err)
	a.SetValue(2)

	out := buf.String()
	assert.Contains(t, out, "runtime="+rt.ID())
	assert.Contains(t, out, "effect run")
	assert.Contains(t, out, "flushed")
	assert.Contains(t, out, "reentrancy=rerun")
}

func TestRuntimeIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, reactive.New().ID(), reactive.New().ID())
}

func TestEndBatchWithoutStart(t *testing.T) {
	rt := newRuntime(t)
	assert.Panics(t, rt.EndBatch)
}

func TestReentrancyPolicyString(t *testing.T) {
	assert.Equal(t, "rerun", reactive.ReentrancyRerun.String())
	assert.Equal(t, "drop", reactive.ReentrancyDrop.String())
	assert.Equal(t, "error", reactive.ReentrancyError.String())
}
