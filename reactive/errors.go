package reactive

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrCircularDependency is raised when a computed reads itself while
	// computing.
	ErrCircularDependency = errors.New("reactive: circular dependency")
	// ErrReentrantSchedule is reported under ReentrancyError when an effect
	// is notified while its own body is running.
	ErrReentrantSchedule = errors.New("reactive: effect notified while running")
	// ErrRuntimeClosed is returned when creating effects or watchers on a
	// closed runtime. Computeds never schedule and are still allowed.
	ErrRuntimeClosed = errors.New("reactive: runtime closed")
)

// PanicError carries a panic recovered from an effect body or a computed
// getter.
type PanicError struct {
	Value any
	Stack []byte
}

func newPanicError(v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		return pe
	}
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("reactive: panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// EffectError ties a failure during a flush to the effect that produced it.
type EffectError struct {
	EffectID uint64
	Err      error
}

func (e *EffectError) Error() string {
	return fmt.Sprintf("reactive: effect %d: %v", e.EffectID, e.Err)
}

func (e *EffectError) Unwrap() error {
	return e.Err
}
