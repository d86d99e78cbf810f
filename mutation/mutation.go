package mutation

import (
	"bytes"
	"errors"
)

//go:generate mockgen -destination=mutation_mock.go -package=mutation -source=mutation.go

// ErrColumnNotFound is returned by Get when a mutation holds no value for the requested column.
var ErrColumnNotFound = errors.New("column not found")

// Column identifies a cell within a row by its family and qualifier.
type Column struct {
	Family    []byte
	Qualifier []byte
}

// String renders the column as family:qualifier.
func (c Column) String() string {
	return string(c.Family) + ":" + string(c.Qualifier)
}

// Equal reports whether both columns name the same family and qualifier.
func (c Column) Equal(o Column) bool {
	return bytes.Equal(c.Family, o.Family) && bytes.Equal(c.Qualifier, o.Qualifier)
}

// Mutation is a pending write bundling one or more column values for a single row key.
type Mutation interface {
	// Has reports whether the mutation writes the given column.
	Has(family, qualifier []byte) bool
	// Get returns the value written to the column, or ErrColumnNotFound.
	Get(family, qualifier []byte) ([]byte, error)
	// Columns enumerates every written column in the mutation's natural order.
	Columns() []Column
}
