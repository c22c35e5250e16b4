package testutil

import (
	"math/rand"
	"sync"
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

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// RawBits returns a pseudo-random storage value confined to the low width
// bits. A width of 64 or more returns a full uint64; zero or negative
// returns 0.
func (r *RNG) RawBits(width int) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width <= 0 {
		return 0
	}

	if width >= 64 {
		return r.rand.Uint64()
	}

	return r.rand.Uint64() & (uint64(1)<<uint(width) - 1)
}

// FillPositions fills dst with random bit positions in [0, width).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillPositions(dst []int, width int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range dst {
		dst[i] = r.rand.Intn(width)
	}
}

// Positions generates a batch of random bit positions in [0, width).
func (r *RNG) Positions(num, width int) []int {
	dst := make([]int, num)
	r.FillPositions(dst, width)

	return dst
}

// Memberships generates n booleans where each is true with the given
// probability. Useful for building expected membership patterns.
func (r *RNG) Memberships(n int, rate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	member := make([]bool, n)
	for i := range n {
		member[i] = r.rand.Float64() < rate
	}

	return member
}
