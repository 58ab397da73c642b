package bench

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kadanebench/kadane"
	"kadanebench/lcg"
)

// Total for the default parameters. Every one of the 20 trials peaks at 549.
const goldenTotal int64 = 10980

var goldenSeeds = []uint32{
	1083814273, 378494188, 2479403867, 955863294, 1613448261,
	110225632, 1921058495, 508781842, 3753001289, 4271921684,
	3664477795, 2146095206, 2757373069, 3699926152, 2561818183,
	389768954, 602196497, 4080598076, 3970935403, 3820240078,
}

func TestRunGolden(t *testing.T) {
	for _, v := range []kadane.Variant{kadane.ExtendOrRestart, kadane.ResetToZero} {
		p := DefaultParams()
		p.Variant = v
		res, err := Run(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, goldenTotal, res.Total, v.String())
		require.Len(t, res.Trials, 20)
		for i, tr := range res.Trials {
			assert.Equal(t, i, tr.Index)
			assert.Equal(t, goldenSeeds[i], tr.Seed)
			assert.Equal(t, int64(549), tr.MaxSum)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	p := DefaultParams()
	first, err := Run(context.Background(), p)
	require.NoError(t, err)
	second, err := Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Trials, second.Trials)
}

func TestSingleValueTrial(t *testing.T) {
	r := lcg.Range{Min: -10, Max: 10}
	// first draw from seed 42 is 1083814273, which maps to 0
	assert.Equal(t, int64(0), Trial(1, 42, r, kadane.NewReducer(kadane.ExtendOrRestart)))
	assert.Equal(t, int64(6), Trial(1, 1083814273, r, kadane.NewReducer(kadane.ExtendOrRestart)))

	g := lcg.New(508781842)
	first := g.Bounded(r)
	assert.Equal(t, int64(-8), first)
	assert.Equal(t, first, Trial(1, 508781842, r, kadane.NewReducer(kadane.ExtendOrRestart)))
}

func TestRunSingleValueTrials(t *testing.T) {
	p := DefaultParams()
	p.N = 1
	res, err := Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Total)

	// negative single draws count as zero under the reset policy
	p.Variant = kadane.ResetToZero
	res, err = Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(60), res.Total)
}

func TestRunFewerTrials(t *testing.T) {
	p := DefaultParams()
	p.N = 1000
	p.Trials = 3
	res, err := Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(662), res.Total)
	want := []int64{222, 220, 220}
	for i, tr := range res.Trials {
		assert.Equal(t, want[i], tr.MaxSum)
	}
}

func TestTrialReusesReducer(t *testing.T) {
	r := lcg.Range{Min: -10, Max: 10}
	red := kadane.NewReducer(kadane.ExtendOrRestart)
	a := Trial(1000, 1083814273, r, red)
	b := Trial(1000, 1083814273, r, red)
	assert.Equal(t, a, b)
	assert.Equal(t, 1000, red.Len())
}

func TestValidate(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())

	bad := p
	bad.N = 0
	assert.True(t, errors.Is(bad.Validate(), ErrSequenceLength))

	bad = p
	bad.Trials = 0
	assert.True(t, errors.Is(bad.Validate(), ErrTrialCount))

	bad = p
	bad.Range = lcg.Range{Min: 10, Max: -10}
	assert.True(t, errors.Is(bad.Validate(), ErrRange))

	_, err := Run(context.Background(), bad)
	assert.True(t, errors.Is(err, ErrRange))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, DefaultParams())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepeat(t *testing.T) {
	p := DefaultParams()
	p.N = 500
	results, err := Repeat(context.Background(), p, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, results[0].Total, r.Total)
	}

	for _, count := range []int{0, -5} {
		results, err = Repeat(context.Background(), p, count)
		assert.True(t, errors.Is(err, ErrRepeatCount))
		assert.Empty(t, results)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Result{
		{Total: 5, Elapsed: 3 * time.Millisecond},
		{Total: 5, Elapsed: 1 * time.Millisecond},
		{Total: 5, Elapsed: 5 * time.Millisecond},
	})
	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, int64(5), s.Total)
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Mean)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func BenchmarkRun(b *testing.B) {
	p := DefaultParams()
	for i := 0; i < b.N; i++ {
		_, _ = Run(context.Background(), p)
	}
}

func BenchmarkTrial(b *testing.B) {
	r := lcg.Range{Min: -10, Max: 10}
	red := kadane.NewReducer(kadane.ExtendOrRestart)
	for i := 0; i < b.N; i++ {
		Trial(10000, 42, r, red)
	}
}

func BenchmarkMaxSubarraySlice(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := lcg.New(42)
		xs := make([]int64, 10000)
		for j := range xs {
			xs[j] = g.Bounded(lcg.Range{Min: -10, Max: 10})
		}
		b.StartTimer()
		_, _ = kadane.MaxSubarray(xs, kadane.ResetToZero)
	}
}
