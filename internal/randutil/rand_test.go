package randutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for range 100 {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewSeedsDiffer(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSourceMatchesRand(t *testing.T) {
	t.Parallel()

	src := NewSource(7)
	rng := New(7)
	for range 50 {
		assert.Equal(t, rng.Float64(), src.Float64())
	}
}

func TestSourceConcurrentDraws(t *testing.T) {
	t.Parallel()

	src := TimeSource()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				v := src.Float64()
				if v < 0 || v >= 1 {
					t.Errorf("draw out of range: %v", v)
				}
			}
		}()
	}
	wg.Wait()
}
