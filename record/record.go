package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	defaultRecordDirectory = "runs"
	defaultRecordFile      = "outputs.log"
)

// Entry is one line of the record log. A run is written as one entry per output followed by a
// closing entry with Done set, so a run without outputs still leaves a trace and a run cut short
// can be told apart from a complete one.
//
// Keys, families, qualifiers and values are stored as bytes and survive a round trip unchanged,
// whether or not they are valid UTF-8.
type Entry struct {
	RunID string `json:"run"`
	Seq   int    `json:"seq"`
	Key   []byte `json:"key,omitempty"`
	// Cells holds every value the output wrote, in the order the mutation enumerates them.
	Cells []Cell `json:"cells,omitempty"`
	// Done marks the closing entry of a run; Count is the number of outputs the run recorded.
	Done      bool      `json:"done,omitempty"`
	Count     int       `json:"count,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Cell is one recorded column value.
type Cell struct {
	Family    []byte `json:"family"`
	Qualifier []byte `json:"qualifier"`
	Value     []byte `json:"value"`
}

// Manager appends entries to the record log, one JSON document per line.
type Manager struct {
	mu   sync.Mutex
	file *os.File
	path string
}

type Config struct {
	// Path where the record directory will be created
	Path string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Path == "" {
		errGrp = append(errGrp, errors.New("record path cannot be empty"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	recordPath := DefaultPath(cfg.Path)
	if err := os.MkdirAll(filepath.Dir(recordPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create record directory: %w", err)
	}

	file, err := os.OpenFile(recordPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0640)
	if err != nil {
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}

	return &Manager{
		file: file,
		path: recordPath,
	}, nil
}

// Apply appends e to the log:
//
//	{"run":"5d0c...","seq":0,"key":"QmFzaG8=","cells":[{"family":"dA==",...}],"timestamp":"..."}
func (m *Manager) Apply(e *Entry) error {
	return m.ApplyAll([]*Entry{e})
}

// ApplyAll appends entries with a single write. Nothing is written if any entry fails to encode.
func (m *Manager) ApplyAll(entries []*Entry) error {
	var buf bytes.Buffer
	for _, e := range entries {
		jsonData, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}
		buf.Write(jsonData)
		buf.WriteByte('\n')
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write to record log: %w", err)
	}

	return nil
}

// DefaultPath returns where a Manager created with Config{Path: dir} writes its log.
func DefaultPath(dir string) string {
	return filepath.Join(dir, defaultRecordDirectory, defaultRecordFile)
}

// FilePath returns the location of the record log.
func (m *Manager) FilePath() string {
	return m.path
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.file.Close()
}
