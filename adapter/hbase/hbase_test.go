package hbase

import (
	"context"
	"github.com/litetable/litetable-mrunit/expect"
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/litetable/litetable-mrunit/verify"
	"github.com/stretchr/testify/require"
	"github.com/tsuna/gohbase/hrpc"
	"strings"
	"testing"
)

const table = "haiku"

func newPut(t *testing.T, key string, values map[string]map[string][]byte) *hrpc.Mutate {
	t.Helper()
	put, err := hrpc.NewPutStr(context.Background(), table, key, values)
	require.NoError(t, err)
	return put
}

func TestMutation(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	put := Mutation(newPut(t, "Basho", map[string]map[string][]byte{
		"t": {
			"old pond": []byte("a frog leaps in"),
			"frog":     []byte("plop"),
		},
		"m": {
			"year": []byte("1686"),
		},
	}))

	req.Equal("Basho", string(put.Row()))
	req.Equal([]mutation.Column{
		{Family: []byte("m"), Qualifier: []byte("year")},
		{Family: []byte("t"), Qualifier: []byte("frog")},
		{Family: []byte("t"), Qualifier: []byte("old pond")},
	}, put.Columns())

	value, err := put.Get([]byte("t"), []byte("old pond"))
	req.NoError(err)
	req.Equal("a frog leaps in", string(value))
}

// haikuJob splits a poem into a put keyed by its author.
func haikuJob(c *Collector, poem string) error {
	lines := strings.Split(poem, "\n")
	put, err := hrpc.NewPutStr(context.Background(), table, lines[0], map[string]map[string][]byte{
		"t": {lines[1]: []byte(strings.Join(lines[2:], "\n"))},
	})
	if err != nil {
		return err
	}
	c.Write(put)
	return nil
}

func TestCollector_Outputs(t *testing.T) {
	t.Parallel()
	oldPond := expect.NewColumn("t", "old pond")

	tests := map[string]struct {
		expected []expect.Row[[]byte]
		want     string
	}{
		"matching row": {
			expected: []expect.Row[[]byte]{
				{Key: []byte("Basho"), Values: []expect.Value{oldPond.Value("old pond...\na frog leaps in\nwater's sound")}},
			},
		},
		"byte key mismatch": {
			expected: []expect.Row[[]byte]{
				{Key: []byte("basho"), Values: []expect.Value{oldPond.Value("")}},
			},
			want: "2 Error(s): (Missing expected rowkey (basho)., Recieved unexpected rowkey (Basho).)",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)

			c := &Collector{}
			req.NoError(haikuJob(c, "Basho\nold pond\nold pond...\na frog leaps in\nwater's sound"))

			outputs := c.Outputs()
			req.Len(outputs, 1)
			req.Equal([]byte("Basho"), outputs[0].Key)

			err := verify.KeyMatching[[]byte]{}.Validate(tc.expected, outputs)
			if tc.want == "" {
				req.NoError(err)
				return
			}
			req.EqualError(err, tc.want)
		})
	}
}

func TestOutputs(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	outputs := Outputs([]*hrpc.Mutate{
		newPut(t, "b", map[string]map[string][]byte{"f": {"q": []byte("1")}}),
		newPut(t, "a", map[string]map[string][]byte{"f": {"q": []byte("2")}}),
	})
	req.Len(outputs, 2)
	req.Equal("b", string(outputs[0].Key))
	req.Equal("a", string(outputs[1].Key))
	req.Empty(Outputs(nil))
}
