package fixture

import (
	"errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_newError(t *testing.T) {
	req := require.New(t)

	t.Run("test error wrapping", func(t *testing.T) {
		err := newError(ErrInvalidFormat, "test error")
		req.NotNil(err)
		req.Implements((*error)(nil), err)

		req.Equal(ErrInvalidFormat, err.err)
		req.True(errors.Is(err, ErrInvalidFormat))
	})

	t.Run("test error wrapping with context", func(t *testing.T) {
		err := newError(ErrMissingKey, "outputs[%d]", 2)
		req.True(errors.Is(err, ErrMissingKey))
		req.Equal("missing row key: outputs[2]", err.Error())
	})

	t.Run("no context", func(t *testing.T) {
		err := &Error{err: ErrUnknownField}
		req.Equal("unknown field", err.Error())
	})
}
