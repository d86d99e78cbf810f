package litetable

import (
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestLatest(t *testing.T) {
	t.Parallel()
	now := time.Now()

	tests := map[string]struct {
		versions []TimestampedValue
		at       time.Time
		want     string
		ok       bool
	}{
		"no versions": {},
		"single value": {
			versions: []TimestampedValue{{Value: []byte("a"), Timestamp: now}},
			want:     "a",
			ok:       true,
		},
		"newest wins regardless of order": {
			versions: []TimestampedValue{
				{Value: []byte("new"), Timestamp: now},
				{Value: []byte("old"), Timestamp: now.Add(-time.Minute)},
			},
			want: "new",
			ok:   true,
		},
		"tombstone hides older value": {
			versions: []TimestampedValue{
				{Value: []byte("a"), Timestamp: now.Add(-time.Minute)},
				{IsTombstone: true, Timestamp: now},
			},
		},
		"value written after tombstone": {
			versions: []TimestampedValue{
				{IsTombstone: true, Timestamp: now.Add(-time.Minute)},
				{Value: []byte("b"), Timestamp: now},
			},
			want: "b",
			ok:   true,
		},
		"expired value": {
			versions: []TimestampedValue{
				{Value: []byte("a"), Timestamp: now, ExpiresAt: now.Add(time.Second)},
			},
			at: now.Add(time.Minute),
		},
		"expiry ignored without a reference time": {
			versions: []TimestampedValue{
				{Value: []byte("a"), Timestamp: now, ExpiresAt: now.Add(time.Second)},
			},
			want: "a",
			ok:   true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)

			got, ok := Latest(tc.versions, tc.at)
			req.Equal(tc.ok, ok)
			req.Equal(tc.want, string(got))
		})
	}
}

func TestRow_Put(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	now := time.Now()

	row := Row{
		Key: "Basho",
		Columns: map[string]VersionedQualifier{
			"z": {
				"b": {{Value: []byte("zb"), Timestamp: now}},
				"a": {{Value: []byte("za"), Timestamp: now}},
			},
			"t": {
				"old pond": {{Value: []byte("haiku"), Timestamp: now}},
				"deleted":  {{Value: []byte("x"), Timestamp: now}, {IsTombstone: true, Timestamp: now.Add(time.Second)}},
			},
		},
	}

	put := row.Put(time.Time{})
	req.Equal("Basho", string(put.Row()))
	req.Equal([]mutation.Column{
		{Family: []byte("t"), Qualifier: []byte("old pond")},
		{Family: []byte("z"), Qualifier: []byte("a")},
		{Family: []byte("z"), Qualifier: []byte("b")},
	}, put.Columns())

	value, err := put.Get([]byte("t"), []byte("old pond"))
	req.NoError(err)
	req.Equal("haiku", string(value))
	req.False(put.Has([]byte("t"), []byte("deleted")))
}
