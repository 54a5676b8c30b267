package reactive

import (
	"math"
	"reflect"
)

// sameValue reports whether a and b are identical: == for comparable values,
// reference identity for maps and slices. NaN is the same as NaN. Functions
// never compare equal.
func sameValue(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}

	switch ta.Kind() {
	case reflect.Func:
		return false
	case reflect.Map:
		return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Float32, reflect.Float64:
		fa, fb := reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float()
		return fa == fb || (math.IsNaN(fa) && math.IsNaN(fb))
	}

	if !ta.Comparable() {
		return false
	}

	// structs and arrays holding interfaces can still panic on ==
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
