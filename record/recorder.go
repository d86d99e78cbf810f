package record

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/litetable/litetable-mrunit/driver"
	"github.com/litetable/litetable-mrunit/expect"
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/litetable/litetable-mrunit/verify"
	"github.com/rs/zerolog/log"
	"time"
)

//go:generate mockgen -destination=recorder_mock.go -package=record -source=recorder.go

// appender receives the entries of a run.
type appender interface {
	ApplyAll(entries []*Entry) error
}

// cellLister is implemented by mutations that can enumerate repeated writes to a column, like
// *mutation.Put.
type cellLister interface {
	Cells() []mutation.Cell
}

// Recorder is a driver.Driver that runs another driver and appends every run's output to a
// record log, so a later verification can replay it with Load.
type Recorder[I, V, K any] struct {
	driver    driver.Driver[I, V, K]
	log       appender
	keyString func(K) string
	now       func() time.Time
	lastRun   string
}

// RecorderConfig configures NewRecorder.
type RecorderConfig[I, V, K any] struct {
	// Driver is the driver whose output is recorded.
	Driver driver.Driver[I, V, K]
	// Log receives the entries; usually a *Manager.
	Log appender
	// KeyString projects row keys to the recorded key bytes. Defaults to expect.ToString.
	KeyString func(K) string
}

func (c *RecorderConfig[I, V, K]) validate() error {
	var errGrp []error
	if c.Driver == nil {
		errGrp = append(errGrp, errors.New("driver is required"))
	}
	if c.Log == nil {
		errGrp = append(errGrp, errors.New("record log is required"))
	}
	return errors.Join(errGrp...)
}

func NewRecorder[I, V, K any](cfg *RecorderConfig[I, V, K]) (*Recorder[I, V, K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	keyString := cfg.KeyString
	if keyString == nil {
		keyString = func(k K) string {
			return expect.ToString(k)
		}
	}

	return &Recorder[I, V, K]{
		driver:    cfg.Driver,
		log:       cfg.Log,
		keyString: keyString,
		now:       time.Now,
	}, nil
}

func (r *Recorder[I, V, K]) AddInput(key I, value V) {
	r.driver.AddInput(key, value)
}

// Run runs the wrapped driver and records its outputs under a new run id, closed by an entry
// carrying the output count. The whole run is appended at once. The outputs are returned as the
// driver produced them.
func (r *Recorder[I, V, K]) Run() ([]verify.Output[K], error) {
	outputs, err := r.driver.Run()
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	now := r.now()
	entries := make([]*Entry, 0, len(outputs)+1)
	for i, out := range outputs {
		cells, err := cellsOf(out.Mutation)
		if err != nil {
			return nil, fmt.Errorf("failed to convert output %d: %w", i, err)
		}
		entries = append(entries, &Entry{
			RunID:     runID,
			Seq:       i,
			Key:       []byte(r.keyString(out.Key)),
			Cells:     cells,
			Timestamp: now,
		})
	}
	entries = append(entries, &Entry{
		RunID:     runID,
		Seq:       len(outputs),
		Done:      true,
		Count:     len(outputs),
		Timestamp: now,
	})

	if err = r.log.ApplyAll(entries); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	r.lastRun = runID
	log.Info().Str("run", runID).Msgf("recorded %d output(s)", len(outputs))
	return outputs, nil
}

// LastRun returns the id of the most recent successful run, or "" before the first one.
func (r *Recorder[I, V, K]) LastRun() string {
	return r.lastRun
}

// cellsOf lists the values of m in its column order. Repeated writes to a column are kept when
// m can list them; otherwise each enumerated column records the value Get reports.
func cellsOf(m mutation.Mutation) ([]Cell, error) {
	if m == nil {
		return nil, nil
	}

	if lister, ok := m.(cellLister); ok {
		var cells []Cell
		for _, c := range lister.Cells() {
			cells = append(cells, Cell{Family: c.Family, Qualifier: c.Qualifier, Value: c.Value})
		}
		return cells, nil
	}

	var cells []Cell
	for _, col := range m.Columns() {
		value, err := m.Get(col.Family, col.Qualifier)
		if err != nil {
			return nil, err
		}
		cells = append(cells, Cell{Family: col.Family, Qualifier: col.Qualifier, Value: value})
	}
	return cells, nil
}
