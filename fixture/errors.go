package fixture

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrUnknownField  = errors.New("unknown field")
	ErrMissingKey    = errors.New("missing row key")
)

// Error is a fixture that could not be decoded or failed validation. It matches its sentinel
// with errors.Is, and the context names the offending output or column.
type Error struct {
	err     error
	context string // e.g. "outputs[1].columns[0]: family and qualifier are required"
}

func (e *Error) Error() string {
	if e.context == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err.Error(), e.context)
}

func (e *Error) Unwrap() error {
	return e.err
}

func newError(err error, format string, args ...any) *Error {
	return &Error{
		err:     err,
		context: fmt.Sprintf(format, args...),
	}
}
