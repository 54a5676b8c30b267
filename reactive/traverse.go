package reactive

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

type valuer interface {
	anyValue() any
}

// Traverse reads everything reachable from v through wrappers, so the
// active subscriber depends on all of it.
func Traverse(v any) {
	fingerprint(v)
}

// fingerprint traverses v and hashes what it read. Cycles are visited once.
func fingerprint(v any) uint64 {
	d := xxhash.New()
	walk(d, v, map[any]struct{}{})
	return d.Sum64()
}

func walk(d *xxhash.Digest, v any, seen map[any]struct{}) {
	switch v := v.(type) {
	case *Object:
		if _, ok := seen[v]; ok {
			d.WriteString("<cycle>")
			return
		}
		seen[v] = struct{}{}
		d.WriteString("{")
		for _, k := range v.Keys() {
			d.WriteString(strconv.Quote(k))
			d.WriteString(":")
			walk(d, v.Get(k), seen)
			d.WriteString(",")
		}
		d.WriteString("}")
	case *Array:
		if _, ok := seen[v]; ok {
			d.WriteString("<cycle>")
			return
		}
		seen[v] = struct{}{}
		d.WriteString("[")
		for _, item := range v.Values() {
			walk(d, item, seen)
			d.WriteString(",")
		}
		d.WriteString("]")
	case valuer:
		walk(d, v.anyValue(), seen)
	default:
		fmt.Fprintf(d, "%T(%v)", v, v)
	}
}
