package testutil

import (
	"math/bits"
	"math/rand"
	"sync"

	"github.com/hupe1980/pagealloc/pagesize"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// PageMultiple returns a random size in [1, maxPages] pages of size p.
func (r *RNG) PageMultiple(p pagesize.PowerOf2, maxPages int) uintptr {
	return uintptr(r.Intn(maxPages)+1) * p.Value()
}

// Alignment returns a random power of two no larger than p.
func (r *RNG) Alignment(p pagesize.PowerOf2) uintptr {
	shift := r.Intn(bits.TrailingZeros64(uint64(p)) + 1)
	return uintptr(1) << shift
}
