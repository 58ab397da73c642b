// Package kadane finds the maximum sum of a contiguous, non-empty run of values
// in a stream, in one forward pass with constant memory.
//
// Two reset policies are provided. They only differ when every subarray of the
// stream sums to a negative number:
//
//   - ExtendOrRestart keeps max(cur+x, x) and reports the largest element of an
//     all-negative stream. This is the default.
//   - ResetToZero drops a running sum as soon as it goes negative, with the best
//     sum starting at 0, so an all-negative stream reports 0.
package kadane

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrEmpty = errors.New("kadane: empty sequence")

type Variant int

const (
	ExtendOrRestart Variant = iota
	ResetToZero
)

func (v Variant) String() string {
	switch v {
	case ExtendOrRestart:
		return "extend"
	case ResetToZero:
		return "reset"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant accepts the names returned by String.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "extend", "a":
		return ExtendOrRestart, nil
	case "reset", "b":
		return ResetToZero, nil
	}
	return 0, fmt.Errorf("unknown reducer variant %q (want extend or reset)", s)
}

// Reducer consumes a stream of values one at a time.
// Best is only meaningful once Len is at least 1.
type Reducer interface {
	Reset()
	Push(x int64)
	Best() int64
	Len() int
}

func NewReducer(v Variant) Reducer {
	if v == ResetToZero {
		return &resetToZero{}
	}
	return &extendOrRestart{best: math.MinInt64}
}

type extendOrRestart struct {
	best int64
	cur  int64
	n    int
}

func (r *extendOrRestart) Reset() {
	*r = extendOrRestart{best: math.MinInt64}
}

func (r *extendOrRestart) Push(x int64) {
	if r.n == 0 || r.cur+x < x {
		r.cur = x
	} else {
		r.cur += x
	}
	if r.cur > r.best {
		r.best = r.cur
	}
	r.n++
}

func (r *extendOrRestart) Best() int64 { return r.best }
func (r *extendOrRestart) Len() int    { return r.n }

type resetToZero struct {
	best int64
	sum  int64
	n    int
}

func (r *resetToZero) Reset() {
	*r = resetToZero{}
}

func (r *resetToZero) Push(x int64) {
	r.sum += x
	if r.sum > r.best {
		r.best = r.sum
	}
	if r.sum < 0 {
		r.sum = 0
	}
	r.n++
}

func (r *resetToZero) Best() int64 { return r.best }
func (r *resetToZero) Len() int    { return r.n }

// MaxSubarray runs the chosen variant over xs.
func MaxSubarray(xs []int64, v Variant) (int64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	r := NewReducer(v)
	for _, x := range xs {
		r.Push(x)
	}
	return r.Best(), nil
}
