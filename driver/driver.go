package driver

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-mrunit/expect"
	"github.com/litetable/litetable-mrunit/verify"
	"github.com/rs/zerolog/log"
	"testing"
)

//go:generate mockgen -destination=driver_mock.go -package=driver -source=driver.go

// Driver runs the job under test. I and V are the input key and value types, K the output row
// key type.
type Driver[I, V, K any] interface {
	// AddInput registers one input record.
	AddInput(key I, value V)
	// Run executes the job over every registered input and returns its complete output.
	Run() ([]verify.Output[K], error)
}

// Adapter wraps a Driver and validates its output against declared expectations:
//
//	oldPond := expect.NewColumn("t", "old pond")
//	err := adapter.
//		WithInput(0, "Basho\nold pond\n...").
//		WithOutput("Basho", oldPond.Value("...")).
//		RunTest()
//
// An Adapter belongs to one test case; expected rows are only ever appended.
type Adapter[I, V, K any] struct {
	driver     Driver[I, V, K]
	reconciler verify.Reconciler[K]
	expected   []expect.Row[K]
}

// Config configures New.
type Config[I, V, K any] struct {
	// Driver is the job driver being adapted.
	Driver Driver[I, V, K]
	// Reconciler validates output. Defaults to verify.KeyMatching.
	Reconciler verify.Reconciler[K]
}

func (c *Config[I, V, K]) validate() error {
	var errGrp []error
	if c.Driver == nil {
		errGrp = append(errGrp, errors.New("driver is required"))
	}
	return errors.Join(errGrp...)
}

// New creates an Adapter over cfg.Driver.
func New[I, V, K any](cfg *Config[I, V, K]) (*Adapter[I, V, K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	reconciler := cfg.Reconciler
	if reconciler == nil {
		reconciler = verify.KeyMatching[K]{}
	}

	return &Adapter[I, V, K]{
		driver:     cfg.Driver,
		reconciler: reconciler,
	}, nil
}

// WithInput forwards one input record to the driver.
func (a *Adapter[I, V, K]) WithInput(key I, value V) *Adapter[I, V, K] {
	a.driver.AddInput(key, value)
	return a
}

// WithInputs forwards each value as its own input record under key.
func (a *Adapter[I, V, K]) WithInputs(key I, values []V) *Adapter[I, V, K] {
	for _, value := range values {
		a.driver.AddInput(key, value)
	}
	return a
}

// WithOutput declares the columns expected under key. Calling it again with the same key adds
// to that row's expectations.
func (a *Adapter[I, V, K]) WithOutput(key K, values ...expect.Value) *Adapter[I, V, K] {
	a.expected = append(a.expected, expect.Row[K]{
		Key:    key,
		Values: append([]expect.Value(nil), values...),
	})
	return a
}

// Expected returns the rows declared so far.
func (a *Adapter[I, V, K]) Expected() []expect.Row[K] {
	out := make([]expect.Row[K], len(a.expected))
	copy(out, a.expected)
	return out
}

// Run executes the driver and returns its raw output without validating it.
func (a *Adapter[I, V, K]) Run() ([]verify.Output[K], error) {
	return a.driver.Run()
}

// RunTest executes the driver once and validates its output against the declared rows.
// Discrepancies are returned as a single *verify.AssertionError.
func (a *Adapter[I, V, K]) RunTest() error {
	outputs, err := a.driver.Run()
	if err != nil {
		return fmt.Errorf("failed to run driver: %w", err)
	}

	log.Debug().Msgf("validating %d output(s) against %d expected row(s)", len(outputs),
		len(a.expected))
	return a.Validate(outputs)
}

// Validate checks outputs produced elsewhere against the declared rows.
func (a *Adapter[I, V, K]) Validate(outputs []verify.Output[K]) error {
	return verify.Validate(a.reconciler, a.expected, outputs)
}

// Verify is RunTest reported through t.
func (a *Adapter[I, V, K]) Verify(t testing.TB) {
	t.Helper()
	if err := a.RunTest(); err != nil {
		t.Fatal(err.Error())
	}
}
