package kernel

import (
	"math"

	"github.com/hupe1980/bitnn/bitvec"
)

// Source supplies the random integers consumed by Entropy. Seeding and
// lifecycle stay with the caller; *rand.Rand from math/rand/v2 and
// *mt19937.MT19937 both satisfy it.
type Source interface {
	Uint64() uint64
}

// Rate normalizes the gap between an expected and an observed quantity
// into a signed scalar, roughly in [-1, 1] when |expected-given| <= total.
// It is the usual adaptation signal fed into Entropy.
func Rate(expected, given, total int) float64 {
	return float64(expected-given) / float64(total)
}

// Entropy applies a bounded number of random single-bit writes to w and
// returns the perturbed word. The write count is drawn uniformly from
// [0, 64*|rate|) and each target bit uniformly from [0, 64). A positive
// rate sets the selected bits, a negative rate clears them, and a zero
// rate leaves w unchanged. Consequently the popcount never decreases for
// rate > 0 and never increases for rate < 0.
//
// This is the kernel's only non-deterministic operation.
func Entropy(w uint64, rate float64, src Source) uint64 {
	bound := uint64(bitvec.WordBits * math.Abs(rate))
	if bound == 0 {
		return w
	}

	flips := src.Uint64() % bound
	for ; flips > 0; flips-- {
		mask := uint64(1) << (src.Uint64() % bitvec.WordBits)
		if rate > 0 {
			w |= mask
		} else {
			w &^= mask
		}
	}
	return w
}
