// Package lcg is the linear congruential generator that produces the benchmark
// workload, plus the mapping of its raw output into a bounded integer range.
//
// The generator is NOT cryptographically secure. It only exists so that every
// run sees the same sequence of numbers.
package lcg

// Numerical Recipes constants. The modulus 2^32 is implicit in uint32 overflow.
const (
	Multiplier uint32 = 1664525
	Increment  uint32 = 1013904223
)

// Generator holds a single 32-bit word of state. The zero value is a generator
// seeded with 0.
type Generator struct {
	state uint32
}

func New(seed uint32) Generator {
	return Generator{state: seed}
}

// Next advances the state and returns it. The seed is never returned on its own.
func (g *Generator) Next() uint32 {
	g.state = g.state*Multiplier + Increment
	return g.state
}

// Bounded draws one value and maps it into r.
func (g *Generator) Bounded(r Range) int64 {
	return r.Map(g.Next())
}
