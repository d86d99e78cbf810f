// Package hbase verifies jobs that emit gohbase put requests.
package hbase

import (
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/litetable/litetable-mrunit/verify"
	"github.com/tsuna/gohbase/hrpc"
	"sort"
)

// Mutation converts a put request to a Put. The request keeps its values in maps, so families
// and qualifiers are added in lexical order.
func Mutation(m *hrpc.Mutate) *mutation.Put {
	put := mutation.NewPut(m.Key())

	values := m.Values()
	families := make([]string, 0, len(values))
	for family := range values {
		families = append(families, family)
	}
	sort.Strings(families)

	for _, family := range families {
		qualifiers := make([]string, 0, len(values[family]))
		for qualifier := range values[family] {
			qualifiers = append(qualifiers, qualifier)
		}
		sort.Strings(qualifiers)

		for _, qualifier := range qualifiers {
			put.Add([]byte(family), []byte(qualifier), values[family][qualifier])
		}
	}

	return put
}

// Output wraps a put request as a job output keyed by its row key.
func Output(m *hrpc.Mutate) verify.Output[[]byte] {
	return verify.Output[[]byte]{
		Key:      m.Key(),
		Mutation: Mutation(m),
	}
}

// Outputs converts put requests in emission order.
func Outputs(ms []*hrpc.Mutate) []verify.Output[[]byte] {
	outputs := make([]verify.Output[[]byte], 0, len(ms))
	for _, m := range ms {
		outputs = append(outputs, Output(m))
	}
	return outputs
}

// Collector gathers put requests written by a job so they can be verified afterwards.
type Collector struct {
	puts []*hrpc.Mutate
}

func (c *Collector) Write(m *hrpc.Mutate) {
	c.puts = append(c.puts, m)
}

func (c *Collector) Outputs() []verify.Output[[]byte] {
	return Outputs(c.puts)
}
