package litetable

import (
	"github.com/litetable/litetable-mrunit/mutation"
	"sort"
	"time"
)

// TimestampedValue stores a value with its timestamp
type TimestampedValue struct {
	Value       []byte    `json:"value"`
	Timestamp   time.Time `json:"timestamp"`
	IsTombstone bool      `json:"tombstone"` // if the value is slated for deletion
	ExpiresAt   time.Time `json:"expires"`   // the time in which the value will expire
}

// VersionedQualifier maps qualifiers to their timestamped values
type VersionedQualifier map[string][]TimestampedValue

// Row defines a row of job output in LiteTable's layout:
//
//	Row{
//	  Key: "Basho",
//	  Columns: map[string]VersionedQualifier{
//	    "t": {
//	      "old pond": []TimestampedValue{{Value: []byte("..."), Timestamp: now}},
//	    },
//	  },
//	}
//
// Each qualifier holds every version written to it.
type Row struct {
	Key     string                        `json:"key"`
	Columns map[string]VersionedQualifier `json:"cols"` // family → qualifier → []TimestampedValue
}

// Latest returns the newest live version of a qualifier. A tombstone newer than every value, or
// a value expired at the given time, hides the qualifier. A zero at disables the expiry check.
func Latest(versions []TimestampedValue, at time.Time) ([]byte, bool) {
	var (
		newest TimestampedValue
		found  bool
	)
	for _, v := range versions {
		if !found || !v.Timestamp.Before(newest.Timestamp) {
			newest = v
			found = true
		}
	}

	if !found || newest.IsTombstone {
		return nil, false
	}
	if !at.IsZero() && !newest.ExpiresAt.IsZero() && !at.Before(newest.ExpiresAt) {
		return nil, false
	}
	return newest.Value, true
}

// Put converts the row to a mutation.Put holding the latest live version of every qualifier.
// Families and qualifiers are added in lexical order.
func (r Row) Put(at time.Time) *mutation.Put {
	put := mutation.NewPut([]byte(r.Key))

	families := make([]string, 0, len(r.Columns))
	for family := range r.Columns {
		families = append(families, family)
	}
	sort.Strings(families)

	for _, family := range families {
		qualifiers := make([]string, 0, len(r.Columns[family]))
		for qualifier := range r.Columns[family] {
			qualifiers = append(qualifiers, qualifier)
		}
		sort.Strings(qualifiers)

		for _, qualifier := range qualifiers {
			value, ok := Latest(r.Columns[family][qualifier], at)
			if !ok {
				continue
			}
			put.Add([]byte(family), []byte(qualifier), value)
		}
	}

	return put
}
