package reactive_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicReactivity(t *testing.T) {
	rt := newRuntime(t)
	state := rt.Wrap(map[string]any{"count": 0})
	var log []int
	_, err := reactive.Effect(rt, func() error {
		log = append(log, reactive.Field[int](state, "count"))
		return nil
	})
	require.NoError(t, err)

	state.Set("count", 1)
	assert.Equal(t, []int{0, 1}, log)
}

func TestBatching(t *testing.T) {
	rt := newRuntime(t)
	state := rt.Wrap(map[string]any{"count": 0})
	var log []int
	e, err := reactive.Effect(rt, func() error {
		log = append(log, reactive.Field[int](state, "count"))
		return nil
	})
	require.NoError(t, err)

	rt.Batch(func() {
		state.Set("count", 1)
		state.Set("count", 2)
		rt.Batch(func() {
			state.Set("count", 3)
		})
		assert.Equal(t, 1, rt.Pending())
		assert.Equal(t, []int{0}, log)
	})
	assert.Equal(t, []int{0, 3}, log)
	assert.Equal(t, 2, e.Runs())
	assert.False(t, rt.Batching())
}

func TestBatchRunsInSchedulingOrder(t *testing.T) {
	rt := newRuntime(t)
	state := rt.Wrap(map[string]any{"a": 0, "b": 0})
	var order []string
	_, err := reactive.Effect(rt, func() error {
		state.Get("b")
		order = append(order, "b")
		return nil
	})
	require.NoError(t, err)
	_, err = reactive.Effect(rt, func() error {
		state.Get("a")
		order = append(order, "a")
		return nil
	})
	require.NoError(t, err)
	order = nil

	rt.Batch(func() {
		state.Set("a", 1)
		state.Set("b", 1)
	})
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestDynamicDependencies(t *testing.T) {
	rt := newRuntime(t)
	state := rt.Wrap(map[string]any{"flag": true, "a": 1, "b": 1})
	runs := 0
	e, err := reactive.Effect(rt, func() error {
		runs++
		if reactive.Field[bool](state, "flag") {
			state.Get("a")
		} else {
			state.Get("b")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, e.DependencyCount())

	state.Set("b", 2)
	assert.Equal(t, 1, runs)

	state.Set("flag", false)
	assert.Equal(t, 2, runs)
	state.Set("a", 2)
	assert.Equal(t, 2, runs)
	state.Set("b", 3)
	assert.Equal(t, 3, runs)
}

func TestObjectShape(t *testing.T) {
	rt := newRuntime(t)
	state := rt.Wrap(map[string]any{"b": 2, "a": 1})
	var keys [][]string
	_, err := reactive.Effect(rt, func() error {
		keys = append(keys, state.Keys())
		return nil
	})
	require.NoError(t, err)

	state.Set("a", 10)
	assert.Len(t, keys, 1)

	state.Set("c", 3)
	state.Delete("b")
	state.Delete("missing")
	assert.Equal(t, [][]string{{"a", "b"}, {"a", "b", "c"}, {"a", "c"}}, keys)
}

func TestObjectHasTracksMissingKey(t *testing.T) {
	rt := newRuntime(t)
	state := rt.Wrap(nil)
	var seen []bool
	_, err := reactive.Effect(rt, func() error {
		seen = append(seen, state.Has("x"))
		return nil
	})
	require.NoError(t, err)

	state.Set("y", 1)
	state.Set("x", nil)
	state.Delete("x")
	assert.Equal(t, []bool{false, true, false}, seen)
}

func TestObjectRange(t *testing.T) {
	rt := newRuntime(t)
	state := rt.Wrap(map[string]any{"a": 1, "b": 2, "c": 3})
	sum := 0
	_, err := reactive.Effect(rt, func() error {
		sum = 0
		state.Range(func(key string, v any) bool {
			sum += v.(int)
			return true
		})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 6, sum)
	assert.Equal(t, 3, state.Len())

	state.Set("b", 20)
	assert.Equal(t, 24, sum)
}

func TestWriteEquality(t *testing.T) {
	cases := []struct {
		name     string
		equality bool
		want     int
	}{
		{name: "enabled", equality: true, want: 1},
		{name: "disabled", equality: false, want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rt := newRuntime(t, reactive.WithWriteEquality(tc.equality))
			state := rt.Wrap(map[string]any{"v": 1})
			runs := 0
			_, err := reactive.Effect(rt, func() error {
				runs++
				state.Get("v")
				return nil
			})
			require.NoError(t, err)

			state.Set("v", 1)
			assert.Equal(t, tc.want, runs)
		})
	}
}

func TestNaNWriteIsNoOp(t *testing.T) {
	rt := newRuntime(t)
	ratio := reactive.Ref(rt, math.NaN())
	state := rt.Wrap(map[string]any{"v": math.NaN()})
	runs := 0
	_, err := reactive.Effect(rt, func() error {
		runs++
		ratio.Value()
		state.Get("v")
		return nil
	})
	require.NoError(t, err)

	ratio.SetValue(math.NaN())
	state.Set("v", math.NaN())
	assert.Equal(t, 1, runs)

	ratio.SetValue(0.5)
	assert.Equal(t, 2, runs)
}

func TestIdentity(t *testing.T) {
	rt := newRuntime(t)
	nested := map[string]any{"name": "x"}
	raw := map[string]any{"nested": nested, "list": &[]any{1}}
	obj := rt.Wrap(raw)

	assert.Same(t, obj, rt.Wrap(raw))

	first := obj.Get("nested")
	assert.Same(t, first, obj.Get("nested"))
	assert.Same(t, first, rt.Wrap(nested))
	assert.Same(t, obj.Get("list"), obj.Get("list"))

	assert.Equal(t, reflect.ValueOf(raw).Pointer(), reflect.ValueOf(reactive.ToRaw(obj)).Pointer())
	assert.Equal(t, 5, reactive.ToRaw(5))
	assert.True(t, reactive.IsReactive(first))
	assert.False(t, reactive.IsReactive(nested))
	assert.Same(t, obj, rt.Reactive(obj))
	assert.Same(t, obj, rt.Reactive(raw))

	obj.Set("x", 1)
	assert.Equal(t, 1, raw["x"])

	// wrappers are stored raw
	obj.Set("copy", first)
	assert.Equal(t, reflect.ValueOf(nested).Pointer(), reflect.ValueOf(raw["copy"]).Pointer())
}

func TestNestedObjectTracking(t *testing.T) {
	rt := newRuntime(t)
	state := rt.Wrap(map[string]any{"user": map[string]any{"name": "ann"}})
	var names []string
	_, err := reactive.Effect(rt, func() error {
		user := state.Get("user").(*reactive.Object)
		names = append(names, reactive.Field[string](user, "name"))
		return nil
	})
	require.NoError(t, err)

	state.Get("user").(*reactive.Object).Set("name", "bob")
	state.Set("user", map[string]any{"name": "cy"})
	assert.Equal(t, []string{"ann", "bob", "cy"}, names)
}
