package reactive

// WriteableRef holds a single reactive value.
type WriteableRef[T any] struct {
	rt    *Runtime
	cell  *cell
	value T
}

func Ref[T any](rt *Runtime, initial T) *WriteableRef[T] {
	r := &WriteableRef[T]{rt: rt, value: initial}
	r.cell = &cell{owner: r}
	return r
}

func (r *WriteableRef[T]) Value() T {
	r.rt.track(r.cell)
	return r.value
}

func (r *WriteableRef[T]) Peek() T {
	return r.value
}

func (r *WriteableRef[T]) SetValue(v T) {
	if r.rt.opts.writeEquality && sameValue(r.value, v) {
		return
	}
	r.value = v
	r.cell.notify()
	r.rt.flush()
}

// Update writes fn applied to the current value, without tracking the read.
func (r *WriteableRef[T]) Update(fn func(T) T) {
	r.SetValue(fn(r.value))
}

func (r *WriteableRef[T]) anyValue() any {
	return r.Value()
}
