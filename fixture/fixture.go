// Package fixture loads expected job output declared in YAML:
//
//	name: haiku
//	description: one row per poem
//	outputs:
//	  - key: Basho
//	    columns:
//	      - family: t
//	        qualifier: old pond
//	        value: |-
//	          old pond...
//	          a frog leaps in
//	          water's sound
//
// Outputs may repeat a key; their columns are checked together, like repeated
// driver.Adapter.WithOutput calls.
package fixture

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-mrunit/expect"
	"github.com/litetable/litetable-mrunit/internal/config"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"strings"
)

type Fixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Strategy selects the reconciler: "key" (default) or "positional".
	Strategy string   `yaml:"strategy,omitempty"`
	Outputs  []Output `yaml:"outputs"`
}

// Output is one expected row.
type Output struct {
	Key     string   `yaml:"key"`
	Columns []Column `yaml:"columns,omitempty"`
}

// Column is one expected cell. An absent value expects the empty string.
type Column struct {
	Family    string `yaml:"family"`
	Qualifier string `yaml:"qualifier"`
	Value     string `yaml:"value"`
}

// Load reads and parses the fixture at path.
func Load(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	defer file.Close()

	f, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a fixture. Unknown fields are rejected so typos do not silently drop
// expectations.
func Parse(r io.Reader) (*Fixture, error) {
	var f Fixture
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && unknownField(typeErr) {
			return nil, newError(ErrUnknownField, "%s", strings.Join(typeErr.Errors, "; "))
		}
		if errors.Is(err, io.EOF) {
			return nil, newError(ErrInvalidFormat, "empty document")
		}
		return nil, newError(ErrInvalidFormat, "%s", err.Error())
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func unknownField(err *yaml.TypeError) bool {
	for _, msg := range err.Errors {
		if strings.Contains(msg, "not found in type") {
			return true
		}
	}
	return false
}

func (f *Fixture) validate() error {
	var errGrp []error
	if f.Name == "" {
		errGrp = append(errGrp, newError(ErrInvalidFormat, "name is required"))
	}
	switch f.Strategy {
	case "", config.StrategyKey, config.StrategyPositional:
	default:
		errGrp = append(errGrp, newError(ErrInvalidFormat, "unknown strategy %q", f.Strategy))
	}

	for i, out := range f.Outputs {
		if out.Key == "" {
			errGrp = append(errGrp, newError(ErrMissingKey, "outputs[%d]", i))
		}
		for j, col := range out.Columns {
			if col.Family == "" || col.Qualifier == "" {
				errGrp = append(errGrp, newError(ErrInvalidFormat,
					"outputs[%d].columns[%d]: family and qualifier are required", i, j))
			}
		}
	}
	return errors.Join(errGrp...)
}

// Rows converts the outputs to expected rows in declaration order.
func (f *Fixture) Rows() []expect.Row[string] {
	rows := make([]expect.Row[string], 0, len(f.Outputs))
	for _, out := range f.Outputs {
		values := make([]expect.Value, 0, len(out.Columns))
		for _, col := range out.Columns {
			values = append(values, expect.NewColumn(col.Family, col.Qualifier).Value(col.Value))
		}
		rows = append(rows, expect.Row[string]{
			Key:    out.Key,
			Values: values,
		})
	}
	return rows
}
