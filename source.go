package bloompress

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source supplies uniform random integers to the synthesizer and to random
// probes. Implementations need not be safe for concurrent use.
//
// *rand.Rand from golang.org/x/exp/rand, math/rand and math/rand/v2 (via
// IntN wrappers) all satisfy it.
type Source interface {
	// Intn returns a uniformly distributed integer in [0, n). It panics if
	// n <= 0.
	Intn(n int) int
}

// NewSource returns a PCG-backed Source seeded with seed. Two sources built
// from the same seed produce identical sequences.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewRandomSource returns a Source seeded from the wall clock. Use NewSource
// when results must be reproducible.
func NewRandomSource() *rand.Rand {
	return NewSource(uint64(time.Now().UnixNano()))
}
