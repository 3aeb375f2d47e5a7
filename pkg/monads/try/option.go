package try

import (
	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/option"
)

// ToOption keeps the success value and drops the error. A success holding
// an absent marker becomes None.
func ToOption[T any](t Try[T]) option.Option[T] {
	if t.err != nil {
		return option.None[T]()
	}
	return option.FromNullable(t.value)
}

// FromOption turns an empty option into a failure holding ifEmpty, or
// monads.ErrEmptyAccess when ifEmpty is nil.
func FromOption[T any](o option.Option[T], ifEmpty error) Try[T] {
	if v, ok := o.Unpack(); ok {
		return Success(v)
	}
	if monads.IsNil(ifEmpty) {
		return Failure[T](monads.ErrEmptyAccess)
	}
	return Failure[T](ifEmpty)
}
