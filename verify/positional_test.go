package verify

import (
	"github.com/litetable/litetable-mrunit/expect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPositional_Validate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		exactKeys bool
		expected  []expect.Row[string]
		actual    []Output[string]
		want      string
	}{
		"pairs match": {
			expected: []expect.Row[string]{
				row("Basho", oldPond.Value(bashoHaiku)),
				row("Soseki", oldPond.Value("frost")),
			},
			actual: []Output[string]{
				output("Basho", "t", "old pond", bashoHaiku),
				output("Soseki", "t", "old pond", "frost"),
			},
		},
		"expected key ending with the actual key matches": {
			expected: []expect.Row[string]{row("poet:Basho", oldPond.Value("v"))},
			actual:   []Output[string]{output("Basho", "t", "old pond", "v")},
		},
		"exact keys reject suffix matches": {
			exactKeys: true,
			expected:  []expect.Row[string]{row("poet:Basho", oldPond.Value("v"))},
			actual:    []Output[string]{output("Basho", "t", "old pond", "v")},
			want: "1 Error(s): (Reducer key does not match expected result.  " +
				"Expected 'poet:Basho' got 'Basho')",
		},
		"reordered output fails every pair": {
			expected: []expect.Row[string]{
				row("Basho", oldPond.Value("a")),
				row("Soseki", oldPond.Value("b")),
			},
			actual: []Output[string]{
				output("Soseki", "t", "old pond", "b"),
				output("Basho", "t", "old pond", "a"),
			},
			want: "4 Error(s): (Reducer key does not match expected result.  Expected 'Basho' got 'Soseki', " +
				"Reducer value does not match expected result.  Expected 'a' got 'b', " +
				"Reducer key does not match expected result.  Expected 'Soseki' got 'Basho', " +
				"Reducer value does not match expected result.  Expected 'b' got 'a')",
		},
		"output size differs": {
			expected: []expect.Row[string]{
				row("Basho", oldPond.Value("a")),
				row("Soseki", oldPond.Value("b")),
			},
			actual: []Output[string]{output("Basho", "t", "old pond", "a")},
			want:   "1 Error(s): (Mismatch in output size.  Expected 2 got 1)",
		},
		"unexpected output is only counted": {
			expected: []expect.Row[string]{},
			actual:   []Output[string]{output("Basho", "t", "old pond", "a")},
			want:     "1 Error(s): (Mismatch in output size.  Expected 0 got 1)",
		},
		"missing column": {
			expected: []expect.Row[string]{row("Basho", newPond.Value(""))},
			actual:   []Output[string]{output("Basho", "t", "old pond", "a")},
			want:     "1 Error(s): (Could not find a column for t:new pond)",
		},
		"nil mutation": {
			expected: []expect.Row[string]{row("Basho", oldPond.Value("a"))},
			actual:   []Output[string]{{Key: "Basho"}},
			want:     "1 Error(s): (Could not find a column for t:old pond)",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			nop := zerolog.Nop()
			r := Positional[string]{ExactKeys: tc.exactKeys, Logger: &nop}

			err := r.Validate(tc.expected, tc.actual)
			if tc.want == "" {
				req.NoError(err)
				return
			}

			req.Error(err)
			req.Equal(tc.want, err.Error())
		})
	}
}
