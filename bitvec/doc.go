// Package bitvec implements packed bit-vectors for 1-bit neural networks.
//
// A Vector stores a logical bit sequence in uint64 words: bit i lives in
// word i/64 at position i%64, with bit 0 as the least-significant bit of a
// word. A logical length of n bits occupies exactly WordsFor(n) words. This
// LSB-first layout is the interop contract for externally trained weight
// tables.
//
// Binarization converts signed fixed-point activations to bits with a
// strict threshold comparison:
//
//	v := bitvec.New(len(values))
//	bitvec.Binarize(v, values, 0)  // bit i = 1 iff values[i] > 0
//
// Both Binarize forms write each bit with set-or-clear semantics, so a
// repeated call with the same inputs is idempotent and bits past the
// logical length are never touched.
package bitvec
