package verify

import (
	"github.com/litetable/litetable-mrunit/expect"
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/rs/zerolog"
)

// KeyMatching pairs expected and actual rows by row key. It is the default reconciler.
//
// A pass runs four phases and never stops early:
//
//  1. output count, only when no output was expected at all
//  2. every expected key and column is present with the expected value
//  3. every actual row and column was expected
//  4. the collected messages are returned
//
// Values are compared by their string form, so the projection must be injective for the data
// under test.
type KeyMatching[K any] struct {
	// KeyString projects row keys for matching and messages. Defaults to expect.ToString.
	KeyString func(K) string
	// Logger receives each recorded discrepancy. Defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Validate is shorthand for verify.Validate(r, expected, actual).
func (r KeyMatching[K]) Validate(expected []expect.Row[K], actual []Output[K]) error {
	return Validate[K](r, expected, actual)
}

func (r KeyMatching[K]) Reconcile(expected []expect.Row[K], actual []Output[K]) *Errors {
	errs := NewErrors(loggerOrDefault(r.Logger))
	key := keyFunc(r.KeyString)

	r.compareRecordCounts(errs, expected, actual)
	r.checkForExpected(errs, key, expected, actual)
	r.checkForUnexpected(errs, key, expected, actual)

	return errs
}

func (r KeyMatching[K]) compareRecordCounts(errs *Errors, expected []expect.Row[K],
	actual []Output[K]) {
	if len(actual) > 0 && len(expected) == 0 {
		errs.Record("Expected no output(s); got %d output(s).", len(actual))
	}
}

func (r KeyMatching[K]) checkForExpected(errs *Errors, key func(K) string,
	expected []expect.Row[K], actual []Output[K]) {
	// group values by key, keeping the order in which keys were first registered
	var order []string
	grouped := make(map[string][]expect.Value)
	for _, row := range expected {
		k := key(row.Key)
		if _, seen := grouped[k]; !seen {
			order = append(order, k)
			grouped[k] = []expect.Value{}
		}
		grouped[k] = append(grouped[k], row.Values...)
	}

	for _, k := range order {
		matching := actualRowsWithKey(key, k, actual)
		if len(matching) == 0 {
			errs.Record("Missing expected rowkey (%s).", k)
			continue
		}

		for _, value := range grouped[k] {
			if !checkExpectedColumn(errs, k, value, matching) {
				errs.Record("Missing expected column (%s:%s).", value.Family(), value.Qualifier())
			}
		}
	}
}

// checkExpectedColumn looks for the column in the matching rows and compares the first value
// found. It reports false when no row writes the column.
func checkExpectedColumn(errs *Errors, rowKey string, value expect.Value,
	matching []Output[string]) bool {
	family, qualifier := value.Family(), value.Qualifier()
	for _, row := range matching {
		if row.Mutation == nil || !row.Mutation.Has(family, qualifier) {
			continue
		}

		got, err := row.Mutation.Get(family, qualifier)
		if err != nil {
			errs.Record("Could not find a column for %s:%s", family, qualifier)
			return true
		}

		if value.Expected() != string(got) {
			errs.Record("Mismatch value for: %s(%s:%s)\t\tExpected: %s\t\tRecieved: %s",
				rowKey, family, qualifier, value.Expected(), string(got))
		}
		return true
	}
	return false
}

func (r KeyMatching[K]) checkForUnexpected(errs *Errors, key func(K) string,
	expected []expect.Row[K], actual []Output[K]) {
	for _, out := range actual {
		k := key(out.Key)

		var matching []expect.Row[K]
		for _, row := range expected {
			if key(row.Key) == k {
				matching = append(matching, row)
			}
		}

		if len(matching) == 0 {
			errs.Record("Recieved unexpected rowkey (%s).", k)
			continue
		}

		if expectedRowsContain(matching, out.Mutation) {
			continue
		}

		for _, col := range columnsOf(out.Mutation) {
			errs.Record("Recieved unexpected column (%s:%s).", col.Family, col.Qualifier)
		}
	}
}

// expectedRowsContain reports whether any declared column of the rows is written by m.
func expectedRowsContain[K any](rows []expect.Row[K], m mutation.Mutation) bool {
	if m == nil {
		return false
	}
	for _, row := range rows {
		for _, value := range row.Values {
			if m.Has(value.Family(), value.Qualifier()) {
				return true
			}
		}
	}
	return false
}

// actualRowsWithKey returns the outputs whose projected key equals k, keyed by that projection.
func actualRowsWithKey[K any](key func(K) string, k string, actual []Output[K]) []Output[string] {
	var matching []Output[string]
	for _, out := range actual {
		if key(out.Key) == k {
			matching = append(matching, Output[string]{Key: k, Mutation: out.Mutation})
		}
	}
	return matching
}

func columnsOf(m mutation.Mutation) []mutation.Column {
	if m == nil {
		return nil
	}
	return m.Columns()
}
