package verify

import (
	"bytes"
	"errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestErrors_AssertNone(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		records []string
		want    string
	}{
		"no errors": {},
		"one error": {
			records: []string{"Missing expected rowkey (foo)."},
			want:    "1 Error(s): (Missing expected rowkey (foo).)",
		},
		"errors keep emission order": {
			records: []string{
				"Expected no output(s); got 1 output(s).",
				"Recieved unexpected rowkey (Soseki).",
			},
			want: "2 Error(s): (Expected no output(s); got 1 output(s)., " +
				"Recieved unexpected rowkey (Soseki).)",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			errs := NewErrors(zerolog.Nop())
			for _, r := range tc.records {
				errs.Record("%s", r)
			}

			err := errs.AssertNone()
			if tc.want == "" {
				req.NoError(err)
				return
			}

			req.Error(err)
			req.Equal(tc.want, err.Error())

			var assertErr *AssertionError
			req.True(errors.As(err, &assertErr))
			req.Equal(tc.records, assertErr.Messages)
			req.Equal(len(tc.records), errs.Len())
		})
	}
}

func TestErrors_Record(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	var buf bytes.Buffer
	errs := NewErrors(zerolog.New(&buf))
	errs.Record("Expected no output(s); got %d output(s).", 3)

	req.Equal([]string{"Expected no output(s); got 3 output(s)."}, errs.Messages())
	req.Contains(buf.String(), `"level":"error"`)
	req.Contains(buf.String(), `"message":"Expected no output(s); got 3 output(s)."`)

	// Messages hands out a copy
	msgs := errs.Messages()
	msgs[0] = "changed"
	req.Equal("Expected no output(s); got 3 output(s).", errs.Messages()[0])
}
