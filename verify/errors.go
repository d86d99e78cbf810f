package verify

import (
	"fmt"
	"github.com/rs/zerolog"
	"strings"
)

// Errors accumulates discrepancy messages during one validation pass. Every recorded message is
// also logged at error level.
type Errors struct {
	logger   zerolog.Logger
	messages []string
}

// NewErrors creates an empty collector that logs through logger.
func NewErrors(logger zerolog.Logger) *Errors {
	return &Errors{
		logger: logger,
	}
}

// Record formats and appends one message.
func (e *Errors) Record(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.logger.Error().Msg(msg)
	e.messages = append(e.messages, msg)
}

// Len returns the number of recorded messages.
func (e *Errors) Len() int {
	return len(e.messages)
}

// Messages returns a copy of the recorded messages in emission order.
func (e *Errors) Messages() []string {
	out := make([]string, len(e.messages))
	copy(out, e.messages)
	return out
}

// AssertNone returns nil if nothing was recorded, otherwise an *AssertionError carrying every
// message.
func (e *Errors) AssertNone() error {
	if len(e.messages) == 0 {
		return nil
	}
	return &AssertionError{
		Messages: e.Messages(),
	}
}

// AssertionError is the single failure raised at the end of a validation pass.
type AssertionError struct {
	Messages []string
}

// Error renders the messages as "<n> Error(s): (<msg1>, <msg2>, ...)". Test suites compare
// against this text literally.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%d Error(s): (%s)", len(e.Messages), strings.Join(e.Messages, ", "))
}
