package mutation

import (
	"bytes"
	"fmt"
)

// Cell is one value written to a column.
type Cell struct {
	Column
	Value []byte
}

// Put is an in-memory Mutation for one row. Cells are kept in the order they were added and a
// column may be written more than once; Get returns the first value written, matching how a
// store client reads the head of a cell list.
//
// Example:
//
//	put := mutation.NewPut([]byte("Basho")).
//		AddString("t", "old pond", "a frog leaps in")
type Put struct {
	row   []byte
	cells []Cell
}

// NewPut creates an empty Put for the given row key.
func NewPut(row []byte) *Put {
	return &Put{
		row: bytes.Clone(row),
	}
}

// Row returns the row key the Put was created for.
func (p *Put) Row() []byte {
	return p.row
}

// Add appends a cell. The family, qualifier and value are copied.
func (p *Put) Add(family, qualifier, value []byte) *Put {
	p.cells = append(p.cells, Cell{
		Column: Column{
			Family:    bytes.Clone(family),
			Qualifier: bytes.Clone(qualifier),
		},
		Value: bytes.Clone(value),
	})
	return p
}

// AddString is Add for string data.
func (p *Put) AddString(family, qualifier, value string) *Put {
	return p.Add([]byte(family), []byte(qualifier), []byte(value))
}

// Len returns the number of cells in the Put.
func (p *Put) Len() int {
	return len(p.cells)
}

func (p *Put) Has(family, qualifier []byte) bool {
	_, ok := p.find(family, qualifier)
	return ok
}

func (p *Put) Get(family, qualifier []byte) ([]byte, error) {
	c, ok := p.find(family, qualifier)
	if !ok {
		return nil, fmt.Errorf("%w: %s:%s", ErrColumnNotFound, family, qualifier)
	}
	return c.Value, nil
}

func (p *Put) Columns() []Column {
	cols := make([]Column, 0, len(p.cells))
	for _, c := range p.cells {
		cols = append(cols, c.Column)
	}
	return cols
}

// Cells returns every cell in the order it was added, including repeated writes to a column.
func (p *Put) Cells() []Cell {
	out := make([]Cell, len(p.cells))
	copy(out, p.cells)
	return out
}

func (p *Put) find(family, qualifier []byte) (Cell, bool) {
	want := Column{Family: family, Qualifier: qualifier}
	for _, c := range p.cells {
		if c.Column.Equal(want) {
			return c, true
		}
	}
	return Cell{}, false
}
