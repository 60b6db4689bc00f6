package bitvec

// Binarize encodes a fixed-point vector into dst with a uniform threshold:
// bit i = 1 iff values[i] > threshold.
//
// Every bit in [0, len(values)) is written with set-or-clear semantics, so
// stale bits from a previous encoding cannot survive and repeated calls
// with the same inputs are idempotent. Bits past len(values) are left
// untouched.
//
// SAFETY: Assumes len(dst) >= WordsFor(len(values)). Caller MUST ensure
// the destination is large enough.
func Binarize(dst Vector, values []int8, threshold int8) {
	for i, v := range values {
		if v > threshold {
			dst[wordIndex(i)] |= 1 << bitPos(i)
		} else {
			dst[wordIndex(i)] &^= 1 << bitPos(i)
		}
	}
}

// BinarizeThresholds is the per-element form of Binarize: bit i = 1 iff
// values[i] > thresholds[i].
//
// SAFETY: Assumes len(thresholds) >= len(values) and
// len(dst) >= WordsFor(len(values)).
func BinarizeThresholds(dst Vector, values, thresholds []int8) {
	for i, v := range values {
		if v > thresholds[i] {
			dst[wordIndex(i)] |= 1 << bitPos(i)
		} else {
			dst[wordIndex(i)] &^= 1 << bitPos(i)
		}
	}
}
