package reactive

import (
	"reflect"
	"runtime"
	"sync"
	"weak"
)

// identityMap keeps at most one wrapper per raw container without keeping
// either alive. Entries are pruned by the collector's cleanup, which runs on
// its own goroutine, hence the mutex.
type identityMap struct {
	mu      sync.Mutex
	objects map[uintptr]weak.Pointer[Object]
	arrays  map[uintptr]weak.Pointer[Array]
}

func newIdentityMap() *identityMap {
	return &identityMap{
		objects: map[uintptr]weak.Pointer[Object]{},
		arrays:  map[uintptr]weak.Pointer[Array]{},
	}
}

func (im *identityMap) object(raw map[string]any, create func() *Object) *Object {
	return intern(&im.mu, im.objects, reflect.ValueOf(raw).Pointer(), create)
}

func (im *identityMap) array(raw *[]any, create func() *Array) *Array {
	return intern(&im.mu, im.arrays, reflect.ValueOf(raw).Pointer(), create)
}

func (im *identityMap) size() (objects, arrays int) {
	im.mu.Lock()
	defer im.mu.Unlock()
	return len(im.objects), len(im.arrays)
}

func intern[W any](mu *sync.Mutex, m map[uintptr]weak.Pointer[W], key uintptr, create func() *W) *W {
	mu.Lock()
	if wp, ok := m[key]; ok {
		if w := wp.Value(); w != nil {
			mu.Unlock()
			return w
		}
	}
	w := create()
	wp := weak.Make(w)
	m[key] = wp
	mu.Unlock()

	runtime.AddCleanup(w, func(key uintptr) {
		mu.Lock()
		defer mu.Unlock()
		if cur, ok := m[key]; ok && cur == wp {
			delete(m, key)
		}
	}, key)
	return w
}
