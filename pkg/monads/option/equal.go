package option

import "github.com/ib-77/monads/pkg/monads"

// boxed is implemented by every instantiation of Option, which lets Equal
// compare options whose type parameters differ.
type boxed interface {
	box() (any, bool)
}

func (o Option[T]) box() (any, bool) {
	return o.value, o.defined
}

// Equal reports whether other is an Option (of any type parameter) equal to
// o. Empty options are equal to each other whatever their type parameter.
// Present options compare their values with monads.Equal, so Some[int](1)
// and Some[any](1) are equal in both directions. This deliberately departs
// from Go's nominal equality, where Option[int] and Option[any] never meet.
func (o Option[T]) Equal(other any) bool {
	b, ok := other.(boxed)
	if !ok || monads.IsNil(other) {
		return false
	}

	v, defined := b.box()
	if !o.defined || !defined {
		return o.defined == defined
	}
	return monads.Equal(o.value, v)
}
