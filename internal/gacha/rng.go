package gacha

import (
	"math/rand/v2"
	"sync"

	"github.com/osse101/GatchaLife_Go/internal/utils"
)

// RandomSource supplies the randomness used by rolls and planning.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
}

type defaultRNG struct{}

func (defaultRNG) IntN(n int) int { return utils.RandomInt(0, n-1) }

// DefaultRNG returns the process-wide random source.
func DefaultRNG() RandomSource { return defaultRNG{} }

// seededRNG is reproducible for a given seed and safe for concurrent use.
type seededRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRNG returns a deterministic source, for replays and tests.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
