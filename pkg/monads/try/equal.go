package try

import "github.com/ib-77/monads/pkg/monads"

// boxed is implemented by every instantiation of Try.
type boxed interface {
	box() (any, error)
}

func (t Try[T]) box() (any, error) {
	return t.value, t.err
}

// Equal reports whether other is a Try (of any type parameter) equal to t.
// Successes compare their values covariantly with monads.Equal, so
// Success[int](1) equals Success[any](1) both ways. Failures are equal when
// their errors are: the same instance for comparable error values, deep
// equality otherwise.
func (t Try[T]) Equal(other any) bool {
	b, ok := other.(boxed)
	if !ok || monads.IsNil(other) {
		return false
	}

	v, err := b.box()
	if t.err != nil || err != nil {
		return t.err != nil && err != nil && monads.Equal(t.err, err)
	}
	return monads.Equal(t.value, v)
}
