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

// FillInt8 fills v with uniform values across the full int8 range.
func (r *RNG) FillInt8(v []int8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range v {
		v[i] = int8(r.rand.Intn(256) - 128)
	}
}

// FillWords fills v with uniform 64-bit words.
func (r *RNG) FillWords(v []uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range v {
		v[i] = r.rand.Uint64()
	}
}

// Uint64 returns one uniform 64-bit word. It satisfies kernel.Source.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bits unpacks the first n logical bits of a packed vector.
func Bits(words []uint64, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = words[i/64]&(1<<uint(i%64)) != 0
	}
	return out
}

// NaiveForward is the bit-at-a-time reference for the forward transform:
// +1 where activation and weight are both set, -1 where only the
// activation is set, 0 elsewhere.
func NaiveForward(weights, activations []uint64, n int) int {
	w := Bits(weights, n)
	x := Bits(activations, n)

	sum := 0
	for i := 0; i < n; i++ {
		switch {
		case x[i] && w[i]:
			sum++
		case x[i]:
			sum--
		}
	}
	return sum
}

// SignExpand maps the first n weight bits to a +1/-1 float vector.
func SignExpand(words []uint64, n int) []float64 {
	out := make([]float64, n)
	for i, set := range Bits(words, n) {
		if set {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// MaskExpand maps the first n activation bits to a 1/0 float vector.
func MaskExpand(words []uint64, n int) []float64 {
	out := make([]float64, n)
	for i, set := range Bits(words, n) {
		if set {
			out[i] = 1
		}
	}
	return out
}
