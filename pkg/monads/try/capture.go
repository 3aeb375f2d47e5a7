package try

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/monads/pkg/monads/option"
)

// Attempt runs producer and captures its outcome. A returned error becomes
// a failure. So does every panic recover() can observe: an error panic value
// (runtime errors such as integer division by zero, *runtime.PanicNilError,
// or anything passed to panic that implements error) is stored as the very
// instance that was raised, any other value is wrapped in a *PanicError.
// Nothing is re-panicked.
func Attempt[T any](producer func() (T, error)) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Try[T]{err: panicked(r)}
		}
	}()

	v, err := producer()
	return From(v, err)
}

// Capture is Attempt for producers that report failure only by panicking.
func Capture[T any](producer func() T) Try[T] {
	return Attempt(func() (T, error) {
		return producer(), nil
	})
}

// PanicError is the failure recorded for a panic whose value is not an
// error.
type PanicError struct {
	// ID correlates the failure with log lines written further up.
	ID uuid.UUID
	// Value is what was passed to panic.
	Value any
	// CapturedAt is the capture time (UTC).
	CapturedAt time.Time
	// Frames is the stack at the point of the panic, innermost first.
	Frames []Frame
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Frame is one call frame of a captured panic.
type Frame struct {
	Line     int
	File     string
	Function string
}

// panicSkip drops runtime.Callers, frames, panicked and the deferred
// closure in Attempt, so the stack starts at the panic machinery.
const panicSkip = 4

func panicked(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return &PanicError{
		ID:         uuid.New(),
		Value:      r,
		CapturedAt: time.Now().UTC(),
		Frames:     frames(panicSkip),
	}
}

// frames returns the current stack minus its innermost skip frames.
func frames(skip int) []Frame {
	const depth = 64
	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return nil
	}

	it := runtime.CallersFrames(pcs[:n])
	fs := make([]Frame, 0, n)
	for {
		f, more := it.Next()
		fs = append(fs, Frame{
			Line:     f.Line,
			File:     f.File,
			Function: f.Function,
		})
		if !more {
			break
		}
	}
	return fs
}

// AsPanic returns the *PanicError in err's chain, if any.
func AsPanic(err error) option.Option[*PanicError] {
	var perr *PanicError
	ok := errors.As(err, &perr)
	return option.FromOk(perr, ok)
}
