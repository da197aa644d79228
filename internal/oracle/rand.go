package oracle

import "math/rand"

// Rand is the randomness each engine draws from. Tests inject a seeded
// *rand.Rand; production uses the shared source, which is safe for
// concurrent use.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// defaultRand delegates to math/rand's locked global source.
type defaultRand struct{}

func (defaultRand) Float64() float64 { return rand.Float64() }
func (defaultRand) Intn(n int) int   { return rand.Intn(n) }

// DefaultRand returns the process-wide randomness source.
func DefaultRand() Rand { return defaultRand{} }

func pick(r Rand, pool []string) string {
	return pool[r.Intn(len(pool))]
}
