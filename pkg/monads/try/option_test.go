package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/option"
)

func TestToOption(t *testing.T) {
	t.Parallel()

	assert.True(t, ToOption(Success("A")).Equal(option.Some("A")))
	assert.True(t, ToOption(Failure[string](errBoom)).IsEmpty())

	var p *int
	assert.True(t, ToOption(Success(p)).IsEmpty())
}

func TestFromOption(t *testing.T) {
	t.Parallel()

	errMissing := errors.New("missing")

	assert.True(t, FromOption(option.Some(2), errMissing).Equal(Success(2)))
	assert.Same(t, errMissing, FromOption(option.None[int](), errMissing).GetError())
	assert.ErrorIs(t, FromOption(option.None[int](), nil).GetError(), monads.ErrEmptyAccess)
}
