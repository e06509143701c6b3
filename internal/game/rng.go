package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the uniform random source every probabilistic roll goes through.
// Injected rather than ambient so hazard, injury and death rolls are
// reproducible in tests.
type Rand interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// IntN returns a uniform value in [0,n). n must be positive.
	IntN(n int) int
}

type seededRand struct {
	rng *rand.Rand
}

// NewSeededRand builds a deterministic PCG source from seed.
func NewSeededRand(seed int64) Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return &seededRand{rng: rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))}
}

func (s *seededRand) Float64() float64 { return s.rng.Float64() }
func (s *seededRand) IntN(n int) int   { return s.rng.IntN(n) }

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
