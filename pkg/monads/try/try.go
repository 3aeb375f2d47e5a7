package try

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monads"
)

// Try is either a success holding a value or a failure holding a non-nil
// error. The zero value is a success holding T's zero value.
type Try[T any] struct {
	value T
	err   error
}

func Success[T any](v T) Try[T] {
	return Try[T]{value: v}
}

// Failure returns a failed Try holding err. It panics with
// monads.ErrInvalidArgument when err is nil.
func Failure[T any](err error) Try[T] {
	if monads.IsNil(err) {
		panic(fmt.Errorf("%w: failure cannot hold a nil error", monads.ErrInvalidArgument))
	}
	return Try[T]{err: err}
}

// From wraps the (value, error) pair returned by an ordinary Go call. Like
// any Go caller it tests err != nil, so an error interface holding a typed
// nil pointer is a failure.
func From[T any](v T, err error) Try[T] {
	if err != nil {
		return Try[T]{err: err}
	}
	return Success(v)
}

func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

func (t Try[T]) IsFailure() bool {
	return t.err != nil
}

// Get returns the success value. On a failure it panics with an error
// matching both monads.ErrFailureAccess and the held error.
func (t Try[T]) Get() T {
	if t.err != nil {
		panic(fmt.Errorf("%w: %w", monads.ErrFailureAccess, t.err))
	}
	return t.value
}

// GetError returns the failure error. It panics with
// monads.ErrSuccessAccess on a success.
func (t Try[T]) GetError() error {
	if t.err == nil {
		panic(fmt.Errorf("%w: %T", monads.ErrSuccessAccess, t))
	}
	return t.err
}

// Err returns the failure error, or nil on a success.
func (t Try[T]) Err() error {
	return t.err
}

func (t Try[T]) Unpack() (T, error) {
	return t.value, t.err
}

func (t Try[T]) OrElse(def T) T {
	if t.err != nil {
		return def
	}
	return t.value
}

// Filter keeps a success whose value satisfies p. A rejected value becomes
// a failure matching monads.ErrPredicateUnsatisfied; a panicking predicate
// becomes a failure holding the panic. Failures are returned unchanged.
func (t Try[T]) Filter(p func(T) bool) Try[T] {
	if t.err != nil {
		return t
	}

	ok := Capture(func() bool { return p(t.value) })
	switch {
	case ok.err != nil:
		return Failure[T](ok.err)
	case !ok.value:
		return Failure[T](fmt.Errorf("try filter: %w", monads.ErrPredicateUnsatisfied))
	}
	return t
}

// Recover turns a failure into a success using f. Successes are returned
// unchanged. A panic in f is captured into a new failure.
func (t Try[T]) Recover(f func(error) T) Try[T] {
	if t.err == nil {
		return t
	}
	return Capture(func() T { return f(t.err) })
}

// Tee runs onSuccess or onFailure for their side effects and returns t.
// Either callback may be nil.
func (t Try[T]) Tee(onSuccess func(T), onFailure func(error)) Try[T] {
	if t.err != nil {
		if onFailure != nil {
			onFailure(t.err)
		}
		return t
	}

	if onSuccess != nil {
		onSuccess(t.value)
	}
	return t
}

func (t Try[T]) String() string {
	if t.err != nil {
		return fmt.Sprintf("Failure(%v)", t.err)
	}
	return fmt.Sprintf("Success(%v)", t.value)
}

// FlatMap returns f applied to the success value, passing its result
// through as is. f is not run under the capture boundary: a panic in f
// propagates. Failures are carried over to Try[U] unchanged.
func FlatMap[T, U any](t Try[T], f func(T) Try[U]) Try[U] {
	if t.err != nil {
		return Failure[U](t.err)
	}
	return f(t.value)
}

// Map transforms the success value. f runs under the capture boundary, so
// a panic in f yields a failure holding the panic.
func Map[T, U any](t Try[T], f func(T) U) Try[U] {
	return FlatMap(t, func(v T) Try[U] {
		return Capture(func() U { return f(v) })
	})
}

// Match eliminates t into a plain value.
func Match[T, U any](t Try[T], onSuccess func(T) U, onFailure func(error) U) U {
	if t.err != nil {
		return onFailure(t.err)
	}
	return onSuccess(t.value)
}
