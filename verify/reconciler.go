package verify

import (
	"github.com/litetable/litetable-mrunit/expect"
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=reconciler_mock.go -package=verify -source=reconciler.go

// Output is one row produced by the job under test.
type Output[K any] struct {
	Key      K
	Mutation mutation.Mutation
}

// Reconciler compares expected rows against the actual output of a job.
type Reconciler[K any] interface {
	// Reconcile returns every discrepancy found, in emission order.
	Reconcile(expected []expect.Row[K], actual []Output[K]) *Errors
}

// Validate runs r and fails with an *AssertionError if anything was recorded.
func Validate[K any](r Reconciler[K], expected []expect.Row[K], actual []Output[K]) error {
	return r.Reconcile(expected, actual).AssertNone()
}

// keyFunc falls back to expect.ToString when no projection was configured.
func keyFunc[K any](fn func(K) string) func(K) string {
	if fn != nil {
		return fn
	}
	return func(k K) string {
		return expect.ToString(k)
	}
}

func loggerOrDefault(l *zerolog.Logger) zerolog.Logger {
	if l != nil {
		return *l
	}
	return log.Logger
}
