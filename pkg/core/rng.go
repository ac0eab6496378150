package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Seeds derives n independent seeds. The same base seed always yields the
// same sequence.
func (r *RNG) Seeds(n int) []int64 {
	if n <= 0 {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = r.r.Int64()
	}
	return out
}
