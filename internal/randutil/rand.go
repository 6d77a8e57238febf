package randutil

import (
	rand "math/rand/v2"
	"sync"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so every call site gets the same
// reproducible sequence for the same seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Source is a mutex-guarded *rand.Rand that may be shared between goroutines.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a shareable source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{rng: New(seed)}
}

// TimeSource returns a shareable source seeded from the wall clock.
func TimeSource() *Source {
	return NewSource(time.Now().UnixNano())
}

// Float64 returns a uniform draw in [0,1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
