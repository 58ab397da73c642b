// Package bench drives repeated max-subarray trials over LCG generated
// sequences and times them.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kadanebench/kadane"
	"kadanebench/lcg"
)

var (
	ErrSequenceLength   = errors.New("sequence length must be at least 1")
	ErrTrialCount       = errors.New("trial count must be at least 1")
	ErrRepeatCount      = errors.New("repeat count must be at least 1")
	ErrRange            = errors.New("value range must be non-empty and its length must fit in an int64")
	ErrNondeterministic = errors.New("repeated runs produced different totals")
)

// Params are immutable for the duration of a run.
type Params struct {
	N           int
	InitialSeed uint32
	Range       lcg.Range
	Trials      int
	Variant     kadane.Variant
}

func DefaultParams() Params {
	return Params{
		N:           10000,
		InitialSeed: 42,
		Range:       lcg.Range{Min: -10, Max: 10},
		Trials:      20,
		Variant:     kadane.ExtendOrRestart,
	}
}

func (p Params) Validate() error {
	if p.N < 1 {
		return fmt.Errorf("%w: got %d", ErrSequenceLength, p.N)
	}
	if p.Trials < 1 {
		return fmt.Errorf("%w: got %d", ErrTrialCount, p.Trials)
	}
	if !p.Range.Valid() {
		return fmt.Errorf("%w: got [%d, %d]", ErrRange, p.Range.Min, p.Range.Max)
	}
	return nil
}

type TrialResult struct {
	Index  int
	Seed   uint32
	MaxSum int64
}

type Result struct {
	Params  Params
	Total   int64
	Elapsed time.Duration
	Trials  []TrialResult
}

// Trial generates n values from a fresh generator seeded with seed and
// returns the best subarray sum. red is reset before use.
func Trial(n int, seed uint32, r lcg.Range, red kadane.Reducer) int64 {
	g := lcg.New(seed)
	red.Reset()
	for i := 0; i < n; i++ {
		red.Push(g.Bounded(r))
	}
	return red.Best()
}

// Run executes p.Trials trials. Each trial seed is the next draw of a
// generator seeded with p.InitialSeed. The elapsed time covers the trial loop
// only. ctx is checked between trials.
func Run(ctx context.Context, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	trials := make([]TrialResult, p.Trials)
	var total int64

	start := time.Now()
	seeds := lcg.New(p.InitialSeed)
	for i := 0; i < p.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		seed := seeds.Next()
		best := Trial(p.N, seed, p.Range, kadane.NewReducer(p.Variant))
		total += best
		trials[i] = TrialResult{Index: i, Seed: seed, MaxSum: best}
	}
	elapsed := time.Since(start)

	return Result{
		Params:  p,
		Total:   total,
		Elapsed: elapsed,
		Trials:  trials,
	}, nil
}

// Repeat runs p count times. Every run must produce the same total.
func Repeat(ctx context.Context, p Params, count int) ([]Result, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrRepeatCount, count)
	}
	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		res, err := Run(ctx, p)
		if err != nil {
			return results, err
		}
		if i > 0 && res.Total != results[0].Total {
			return results, fmt.Errorf("%w: run %d got %d, run 0 got %d", ErrNondeterministic, i, res.Total, results[0].Total)
		}
		results = append(results, res)
	}
	return results, nil
}
