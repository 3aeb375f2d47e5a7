package option

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monads"
)

// Option is either present, holding a non-nil value, or empty. The zero
// value is empty.
type Option[T any] struct {
	value   T
	defined bool
}

// Some returns a present option holding v. It panics with
// monads.ErrInvalidArgument when v is an absent marker; use FromNullable
// for values that may be nil.
func Some[T any](v T) Option[T] {
	if monads.IsNil(v) {
		panic(fmt.Errorf("%w: some cannot hold an absent value", monads.ErrInvalidArgument))
	}
	return Option[T]{value: v, defined: true}
}

// None returns an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable returns None when v is an absent marker and Some(v) otherwise.
func FromNullable[T any](v T) Option[T] {
	if monads.IsNil(v) {
		return None[T]()
	}
	return Option[T]{value: v, defined: true}
}

// FromOk adapts the comma-ok idiom of map lookups and type assertions.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return FromNullable(v)
}

// FromPtr dereferences p, treating a nil pointer as empty.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return FromNullable(*p)
}

func (o Option[T]) IsDefined() bool {
	return o.defined
}

func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the held value. It panics with monads.ErrEmptyAccess on an
// empty option.
func (o Option[T]) Get() T {
	if !o.defined {
		panic(fmt.Errorf("%w: %T", monads.ErrEmptyAccess, o))
	}
	return o.value
}

// Unpack returns the held value and whether there was one.
func (o Option[T]) Unpack() (T, bool) {
	return o.value, o.defined
}

func (o Option[T]) OrElse(def T) T {
	if o.defined {
		return o.value
	}
	return def
}

// OrElseGet calls def only when the option is empty.
func (o Option[T]) OrElseGet(def func() T) T {
	if o.defined {
		return o.value
	}
	return def()
}

// Filter keeps the value when p holds for it and returns None otherwise.
// A panicking predicate is not recovered.
func (o Option[T]) Filter(p func(T) bool) Option[T] {
	if o.defined && p(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if !o.defined {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// FlatMap returns f applied to the held value, or None[U] when o is empty.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.defined {
		return None[U]()
	}
	return f(o.value)
}

// Map transforms the held value. A nil result from f yields None, so a
// present option never holds an absent marker.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	return FlatMap(o, func(v T) Option[U] {
		return FromNullable(f(v))
	})
}

// Match eliminates o into a plain value.
func Match[T, U any](o Option[T], onPresent func(T) U, onEmpty func() U) U {
	if o.defined {
		return onPresent(o.value)
	}
	return onEmpty()
}
