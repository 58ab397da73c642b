package lcg

import "math"

// Range is an inclusive integer interval [Min, Max].
// Max-Min+1 must not overflow int64.
type Range struct {
	Min int64
	Max int64
}

// Len is the number of integers in the range.
func (r Range) Len() int64 {
	return r.Max - r.Min + 1
}

// Valid reports whether the range is non-empty and its length fits in an int64.
func (r Range) Valid() bool {
	if r.Max < r.Min {
		return false
	}
	if r.Min < 0 && r.Max > math.MaxInt64+r.Min {
		return false
	}
	return r.Max-r.Min < math.MaxInt64
}

// Map reduces a raw generator output into r by modulo and offset.
// The result is biased towards low values whenever Len does not divide 2^32.
func (r Range) Map(v uint32) int64 {
	return r.Min + int64(v)%r.Len()
}
