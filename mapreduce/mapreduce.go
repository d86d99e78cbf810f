package mapreduce

import (
	"fmt"
	"github.com/litetable/litetable-mrunit/mutation"
	"github.com/litetable/litetable-mrunit/verify"
	"github.com/rs/zerolog/log"
)

// Context receives the rows a job writes.
type Context[K any] interface {
	Write(key K, m mutation.Mutation)
}

// Mapper is called once per input record.
type Mapper[KI, VI, KO any] func(ctx Context[KO], key KI, value VI) error

// Reducer is called once per input key with every value registered for it.
type Reducer[KI, VI, KO any] func(ctx Context[KO], key KI, values []VI) error

type input[K, V any] struct {
	key   K
	value V
}

// collector keeps written rows in write order.
type collector[K any] struct {
	outputs []verify.Output[K]
}

func (c *collector[K]) Write(key K, m mutation.Mutation) {
	c.outputs = append(c.outputs, verify.Output[K]{Key: key, Mutation: m})
}

// MapDriver runs a Mapper in memory over the registered inputs, in registration order.
type MapDriver[KI, VI, KO any] struct {
	mapper Mapper[KI, VI, KO]
	inputs []input[KI, VI]
}

// NewMapDriver creates a MapDriver for mapper.
func NewMapDriver[KI, VI, KO any](mapper Mapper[KI, VI, KO]) *MapDriver[KI, VI, KO] {
	return &MapDriver[KI, VI, KO]{
		mapper: mapper,
	}
}

func (d *MapDriver[KI, VI, KO]) AddInput(key KI, value VI) {
	d.inputs = append(d.inputs, input[KI, VI]{key: key, value: value})
}

// Run maps every input. Inputs are kept, so calling Run again repeats the same job.
func (d *MapDriver[KI, VI, KO]) Run() ([]verify.Output[KO], error) {
	if d.mapper == nil {
		return nil, fmt.Errorf("no mapper configured")
	}

	ctx := &collector[KO]{}
	for i, in := range d.inputs {
		if err := d.mapper(ctx, in.key, in.value); err != nil {
			return nil, fmt.Errorf("mapper failed on input %d: %w", i, err)
		}
	}

	log.Debug().Msgf("map driver processed %d input(s), wrote %d output(s)", len(d.inputs),
		len(ctx.outputs))
	return ctx.outputs, nil
}

// ReduceDriver runs a Reducer in memory. Each AddInput call is one reduce invocation.
type ReduceDriver[KI, VI, KO any] struct {
	reducer Reducer[KI, VI, KO]
	inputs  []input[KI, []VI]
}

// NewReduceDriver creates a ReduceDriver for reducer.
func NewReduceDriver[KI, VI, KO any](reducer Reducer[KI, VI, KO]) *ReduceDriver[KI, VI, KO] {
	return &ReduceDriver[KI, VI, KO]{
		reducer: reducer,
	}
}

func (d *ReduceDriver[KI, VI, KO]) AddInput(key KI, values []VI) {
	d.inputs = append(d.inputs, input[KI, []VI]{
		key:   key,
		value: append([]VI(nil), values...),
	})
}

// Run reduces every input group in registration order.
func (d *ReduceDriver[KI, VI, KO]) Run() ([]verify.Output[KO], error) {
	if d.reducer == nil {
		return nil, fmt.Errorf("no reducer configured")
	}

	ctx := &collector[KO]{}
	for i, in := range d.inputs {
		if err := d.reducer(ctx, in.key, in.value); err != nil {
			return nil, fmt.Errorf("reducer failed on input %d: %w", i, err)
		}
	}

	log.Debug().Msgf("reduce driver processed %d group(s), wrote %d output(s)", len(d.inputs),
		len(ctx.outputs))
	return ctx.outputs, nil
}
