package record

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/litetable/litetable-mrunit/verify"
	"github.com/rs/zerolog/log"
	"os"
	"sort"
)

// maxEntrySize bounds a single log line; rows carrying large values exceed bufio's default.
const maxEntrySize = 16 * 1024 * 1024

var (
	ErrRunNotFound   = errors.New("run not found")
	ErrIncompleteRun = errors.New("incomplete run")
)

type run struct {
	entries []Entry
	done    bool
	count   int
}

// Load replays the log at path and returns the outputs of one run, ordered by sequence number.
// An empty runID selects the last run written to the log. A run whose closing entry is missing,
// or whose output count does not match it, fails with ErrIncompleteRun. Malformed lines are
// skipped.
func Load(path, runID string) ([]verify.Output[string], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record log: %w", err)
	}
	defer file.Close()

	var (
		runs    = make(map[string]*run)
		lastRun string
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEntrySize)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			log.Warn().Err(err).Int("line", line).Msg("skipping malformed record entry")
			continue
		}
		if entry.RunID == "" {
			log.Warn().Int("line", line).Msg("skipping record entry without a run id")
			continue
		}

		r, ok := runs[entry.RunID]
		if !ok {
			r = &run{}
			runs[entry.RunID] = r
		}
		lastRun = entry.RunID

		if entry.Done {
			r.done = true
			r.count = entry.Count
			continue
		}
		r.entries = append(r.entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record log: %w", err)
	}

	if runID == "" {
		runID = lastRun
	}
	r, ok := runs[runID]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrRunNotFound, runID, path)
	}
	if !r.done {
		return nil, fmt.Errorf("%w: %q has no closing entry", ErrIncompleteRun, runID)
	}
	if len(r.entries) != r.count {
		return nil, fmt.Errorf("%w: %q recorded %d output(s), found %d", ErrIncompleteRun, runID,
			r.count, len(r.entries))
	}

	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Seq < r.entries[j].Seq
	})

	outputs := make([]verify.Output[string], 0, len(r.entries))
	for _, entry := range r.entries {
		outputs = append(outputs, verify.Output[string]{
			Key:      string(entry.Key),
			Mutation: entry.put(),
		})
	}

	log.Debug().Msgf("loaded %d output(s) of run %s from %s", len(outputs), runID, path)
	return outputs, nil
}

// put rebuilds the recorded mutation with its cells in recorded order.
func (e Entry) put() *mutation.Put {
	put := mutation.NewPut(e.Key)
	for _, c := range e.Cells {
		put.Add(c.Family, c.Qualifier, c.Value)
	}
	return put
}
