// Package litetable verifies jobs against rows read back from a LiteTable server. Each row is
// reduced to its latest version per qualifier before comparison.
package litetable

import (
	"github.com/litetable/litetable-db/pkg/proto"
	litetable2 "github.com/litetable/litetable-mrunit/internal/litetable"
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/litetable/litetable-mrunit/verify"
	"sort"
	"time"
)

// Row converts a LiteTable row. TimestampUnix only orders the versions of a qualifier; expiry
// is left to the server that produced the row.
func Row(row *proto.Row) litetable2.Row {
	out := litetable2.Row{
		Key:     row.GetKey(),
		Columns: make(map[string]litetable2.VersionedQualifier),
	}

	for family, qualifiers := range row.GetCols() {
		versioned := make(litetable2.VersionedQualifier)
		for qualifier, values := range qualifiers.GetQualifiers() {
			for _, tv := range values.GetValues() {
				versioned[qualifier] = append(versioned[qualifier], litetable2.TimestampedValue{
					Value:     tv.GetValue(),
					Timestamp: time.Unix(0, tv.GetTimestampUnix()),
				})
			}
		}
		out.Columns[family] = versioned
	}

	return out
}

// Mutation converts a LiteTable row to a Put holding the latest version of every qualifier.
func Mutation(row *proto.Row) *mutation.Put {
	return Row(row).Put(time.Time{})
}

// Outputs converts a read response to job outputs ordered by row key. The response map has no
// order of its own.
func Outputs(data *proto.LitetableData) []verify.Output[string] {
	rows := data.GetRows()
	keys := make([]string, 0, len(rows))
	for key := range rows {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	outputs := make([]verify.Output[string], 0, len(keys))
	for _, key := range keys {
		outputs = append(outputs, verify.Output[string]{
			Key:      key,
			Mutation: Mutation(rows[key]),
		})
	}
	return outputs
}
