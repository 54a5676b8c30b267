package reactive

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentityMapPrunes(t *testing.T) {
	rt := New()
	func() {
		for range 10 {
			rt.Wrap(map[string]any{})
			rt.WrapArray(&[]any{})
		}
	}()

	assert.Eventually(t, func() bool {
		runtime.GC()
		objects, arrays := rt.identity.size()
		return objects == 0 && arrays == 0
	}, time.Second, 10*time.Millisecond)
}
