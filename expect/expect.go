package expect

import (
	"bytes"
	"fmt"
)

// Column is a helper for declaring expected output. Create one per family and qualifier you
// expect a job to write, then use Value to bind the expected content:
//
//	oldPond := expect.NewColumn("t", "old pond")
//	adapter.WithOutput("Basho", oldPond.Value("a frog leaps in"))
//
// A Column is immutable and may be reused for any number of values.
type Column struct {
	family    []byte
	qualifier []byte
}

// NewColumn creates a Column for the given family and qualifier.
func NewColumn(family, qualifier string) Column {
	return Column{
		family:    []byte(family),
		qualifier: []byte(qualifier),
	}
}

// NewColumnBytes creates a Column from raw family and qualifier bytes.
func NewColumnBytes(family, qualifier []byte) Column {
	return Column{
		family:    bytes.Clone(family),
		qualifier: bytes.Clone(qualifier),
	}
}

func (c Column) Family() []byte {
	return bytes.Clone(c.family)
}

func (c Column) Qualifier() []byte {
	return bytes.Clone(c.qualifier)
}

// Value binds an expected value to the column. The value is compared by its string form,
// see ToString.
func (c Column) Value(v any) Value {
	return Value{
		family:    c.family,
		qualifier: c.qualifier,
		expected:  ToString(v),
	}
}

// Value is one expected (family, qualifier, value) triple.
type Value struct {
	family    []byte
	qualifier []byte
	expected  string
}

func (v Value) Family() []byte {
	return bytes.Clone(v.family)
}

func (v Value) Qualifier() []byte {
	return bytes.Clone(v.qualifier)
}

// Expected returns the string form of the expected value.
func (v Value) Expected() string {
	return v.expected
}

func (v Value) String() string {
	return fmt.Sprintf("%s:%s=%s", v.family, v.qualifier, v.expected)
}

// Row binds expected values to a row key. Rows sharing a key jointly describe that row.
type Row[K any] struct {
	Key    K
	Values []Value
}
