package verify

import (
	"errors"
	"github.com/litetable/litetable-mrunit/expect"
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/rs/zerolog"
	"strings"
)

// Positional pairs the i-th expected row with the i-th output. It must be selected explicitly;
// reordered output makes every following pair fail.
//
// Keys are compared with a suffix test (the expected key must end with the actual key) unless
// ExactKeys is set. The suffix test is kept for parity with existing reduce-side suites and is
// a known oddity: "xBasho" matches "Basho".
type Positional[K any] struct {
	// KeyString projects row keys for matching and messages. Defaults to expect.ToString.
	KeyString func(K) string
	// ExactKeys requires the projected keys to be equal.
	ExactKeys bool
	// Logger receives each recorded discrepancy. Defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Validate is shorthand for verify.Validate(r, expected, actual).
func (r Positional[K]) Validate(expected []expect.Row[K], actual []Output[K]) error {
	return Validate[K](r, expected, actual)
}

func (r Positional[K]) Reconcile(expected []expect.Row[K], actual []Output[K]) *Errors {
	errs := NewErrors(loggerOrDefault(r.Logger))
	key := keyFunc(r.KeyString)

	if len(expected) != len(actual) {
		errs.Record("Mismatch in output size.  Expected %d got %d", len(expected), len(actual))
	}

	for i, row := range expected {
		// rows past the end of the output are covered by the size message
		if i >= len(actual) {
			break
		}
		out := actual[i]

		expectedKey, actualKey := key(row.Key), key(out.Key)
		if !r.keysMatch(expectedKey, actualKey) {
			errs.Record("Reducer key does not match expected result.  Expected '%s' got '%s'",
				expectedKey, actualKey)
		}

		for _, value := range row.Values {
			got, err := lookup(out.Mutation, value)
			if err != nil {
				errs.Record("Could not find a column for %s:%s", value.Family(), value.Qualifier())
				continue
			}
			if value.Expected() != string(got) {
				errs.Record("Reducer value does not match expected result.  Expected '%s' got '%s'",
					value.Expected(), string(got))
			}
		}
	}

	return errs
}

func (r Positional[K]) keysMatch(expected, actual string) bool {
	if r.ExactKeys {
		return expected == actual
	}
	return strings.HasSuffix(expected, actual)
}

func lookup(m mutation.Mutation, value expect.Value) ([]byte, error) {
	if m == nil {
		return nil, errors.New("no mutation")
	}
	return m.Get(value.Family(), value.Qualifier())
}
