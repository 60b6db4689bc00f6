package bitvec

import "github.com/hupe1980/bitnn/internal/popcnt"

// WordBits is the fixed word width of a packed bit-vector.
const WordBits = 64

// Vector is a packed bit-vector: an ordered sequence of uint64 words
// holding one logical bit per position, LSB-first within each word.
//
// A Vector carries no logical length of its own; callers size it with New
// or WordsFor and track the bit count themselves. Bits past the logical
// length are caller-owned and are never assumed zero.
type Vector []uint64

// WordsFor returns the number of words required to hold n bits.
func WordsFor(n int) int {
	return (n + WordBits - 1) / WordBits
}

// New returns a zeroed Vector sized for n bits.
func New(n int) Vector {
	return make(Vector, WordsFor(n))
}

// wordIndex returns the word holding bit i.
func wordIndex(i int) int { return i / WordBits }

// bitPos returns the position of bit i within its word.
func bitPos(i int) uint { return uint(i % WordBits) }

// Get reports whether bit i is set.
//
// SAFETY: Assumes i < 64*len(v). Caller MUST ensure the index is in range.
func (v Vector) Get(i int) bool {
	return v[wordIndex(i)]&(1<<bitPos(i)) != 0
}

// Set sets bit i to 1.
//
// SAFETY: Assumes i < 64*len(v). Caller MUST ensure the index is in range.
func (v Vector) Set(i int) {
	v[wordIndex(i)] |= 1 << bitPos(i)
}

// Clear sets bit i to 0.
//
// SAFETY: Assumes i < 64*len(v). Caller MUST ensure the index is in range.
func (v Vector) Clear(i int) {
	v[wordIndex(i)] &^= 1 << bitPos(i)
}

// OnesCount returns the number of set bits across the whole vector,
// padding included.
func (v Vector) OnesCount() int {
	return popcnt.Words(v)
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}
