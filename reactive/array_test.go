package reactive_test

import (
	"cmp"
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lengthWatcher(t *testing.T, rt *reactive.Runtime, arr *reactive.Array) *int {
	t.Helper()
	runs := 0
	_, err := reactive.Effect(rt, func() error {
		runs++
		arr.Len()
		return nil
	})
	require.NoError(t, err)
	runs = 0
	return &runs
}

func TestArrayCoalescing(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(arr *reactive.Array)
		want   []any
	}{
		{name: "push", mutate: func(arr *reactive.Array) { arr.Push(4, 5) }, want: []any{1, 2, 3, 4, 5}},
		{name: "pop", mutate: func(arr *reactive.Array) { arr.Pop() }, want: []any{1, 2}},
		{name: "shift", mutate: func(arr *reactive.Array) { arr.Shift() }, want: []any{2, 3}},
		{name: "unshift", mutate: func(arr *reactive.Array) { arr.Unshift(0) }, want: []any{0, 1, 2, 3}},
		{name: "splice", mutate: func(arr *reactive.Array) { arr.Splice(1, 1, 7, 8) }, want: []any{1, 7, 8, 3}},
		{name: "set past end", mutate: func(arr *reactive.Array) { arr.Set(4, 9) }, want: []any{1, 2, 3, nil, 9}},
		{name: "set len", mutate: func(arr *reactive.Array) { arr.SetLen(1) }, want: []any{1}},
		{name: "clear", mutate: func(arr *reactive.Array) { arr.Clear() }, want: []any{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rt := newRuntime(t)
			raw := &[]any{1, 2, 3}
			arr := rt.WrapArray(raw)
			lenRuns := lengthWatcher(t, rt, arr)

			iterRuns := 0
			_, err := reactive.Effect(rt, func() error {
				iterRuns++
				arr.Values()
				return nil
			})
			require.NoError(t, err)
			iterRuns = 0

			tc.mutate(arr)
			assert.Equal(t, 1, *lenRuns)
			assert.Equal(t, 1, iterRuns)
			assert.Equal(t, tc.want, *raw)
		})
	}
}

func TestArrayIndexTracking(t *testing.T) {
	rt := newRuntime(t)
	arr := rt.WrapArray(&[]any{"a", "b", "c"})
	var seen []string
	_, err := reactive.Effect(rt, func() error {
		seen = append(seen, reactive.Index[string](arr, 2))
		return nil
	})
	require.NoError(t, err)
	lenRuns := lengthWatcher(t, rt, arr)

	arr.Set(0, "z")
	assert.Equal(t, []string{"c"}, seen)
	assert.Equal(t, 0, *lenRuns)

	arr.Set(2, "d")
	arr.Set(2, "d")
	assert.Equal(t, []string{"c", "d"}, seen)

	arr.Shift()
	assert.Equal(t, []string{"c", "d", ""}, seen)
	assert.Equal(t, 1, *lenRuns)
}

func TestArrayReverseAndSort(t *testing.T) {
	rt := newRuntime(t)
	raw := &[]any{3, 1, 2}
	arr := rt.WrapArray(raw)
	lenRuns := lengthWatcher(t, rt, arr)
	var firsts []int
	_, err := reactive.Effect(rt, func() error {
		firsts = append(firsts, reactive.Index[int](arr, 0))
		return nil
	})
	require.NoError(t, err)

	arr.Sort(func(x, y any) int { return cmp.Compare(x.(int), y.(int)) })
	assert.Equal(t, []any{1, 2, 3}, *raw)
	arr.Reverse()
	assert.Equal(t, []any{3, 2, 1}, *raw)

	assert.Equal(t, []int{3, 1, 3}, firsts)
	assert.Equal(t, 0, *lenRuns)
}

func TestArraySplice(t *testing.T) {
	rt := newRuntime(t)
	raw := &[]any{1, 2, 3, 4}
	arr := rt.WrapArray(raw)

	assert.Equal(t, []any{3, 4}, arr.Splice(-2, 10))
	assert.Equal(t, []any{1, 2}, *raw)
	assert.Equal(t, []any{}, arr.Splice(5, 1, 9))
	assert.Equal(t, []any{1, 2, 9}, *raw)
}

func TestArrayPopShiftEmpty(t *testing.T) {
	rt := newRuntime(t)
	arr := rt.WrapArray(nil)
	assert.Nil(t, arr.Pop())
	assert.Nil(t, arr.Shift())
	assert.Nil(t, arr.Get(3))
	assert.Equal(t, 2, arr.Push(1, 2))
	assert.Equal(t, 2, arr.Pop())
	assert.Equal(t, 1, arr.Len())
	assert.Panics(t, func() { arr.Set(-1, 0) })
}

func TestArrayIdentity(t *testing.T) {
	rt := newRuntime(t)
	item := map[string]any{"done": false}
	raw := &[]any{item}
	arr := rt.WrapArray(raw)

	assert.Same(t, arr, rt.WrapArray(raw))
	assert.Same(t, raw, arr.Raw())
	assert.Same(t, raw, reactive.ToRaw(arr))

	first := arr.Get(0).(*reactive.Object)
	assert.Same(t, first, rt.Wrap(item))

	arr.Push(first)
	_, isRaw := (*raw)[1].(map[string]any)
	assert.True(t, isRaw)
	assert.Same(t, first, arr.Get(1))
}

func TestArrayRange(t *testing.T) {
	rt := newRuntime(t)
	arr := rt.WrapArray(&[]any{1, 2, 3, 4})
	total := 0
	_, err := reactive.Effect(rt, func() error {
		total = 0
		arr.Range(func(i int, v any) bool {
			total += v.(int)
			return i < 1
		})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	arr.Set(3, 100)
	assert.Equal(t, 3, total)
	arr.Set(1, 20)
	assert.Equal(t, 21, total)
}
