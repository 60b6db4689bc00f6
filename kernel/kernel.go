package kernel

import (
	"github.com/hupe1980/bitnn/bitvec"
	"github.com/hupe1980/bitnn/internal/popcnt"
)

// Forward computes the linear pre-activation for one output cell: the
// ternary dot product of a binary weight column and a binarized
// activation vector.
//
// Per word, a position contributes +1 where activation and weight bits
// are both 1, -1 where the activation bit is 1 and the weight bit is 0,
// and 0 where the activation bit is 0. Padding bits past the logical
// length must therefore be zero in activations; weight padding is
// irrelevant because both popcount terms mask through the activation
// word.
//
// The result is exact. int32 covers any realistic column length.
//
// SAFETY: Assumes len(weights) >= len(activations). Caller MUST ensure
// lengths match.
func Forward(weights, activations []uint64) int32 {
	var sum int32
	for i, x := range activations {
		w := weights[i]
		sum += int32(popcnt.Word(x&w) - popcnt.Word(x&^w))
	}
	return sum
}

// Backward distributes one output cell's error backwards through its
// weight column: inputErr[i] += sign(bit i) * outputErr, where a set bit
// maps to +1 and a clear bit to -1.
//
// The function is invoked once per output cell; inputErr is the shared
// accumulator across those calls and must be zero-initialized by the
// caller before the first one.
//
// SAFETY: Assumes len(inputErr) >= n and len(weights) >= WordsFor(n).
func Backward(weights []uint64, n int, outputErr int, inputErr []int) {
	for i := 0; i < n; i++ {
		if weights[i/bitvec.WordBits]&(1<<uint(i%bitvec.WordBits)) != 0 {
			inputErr[i] += outputErr
		} else {
			inputErr[i] -= outputErr
		}
	}
}

// UpdateWeights rewrites a weight column in place from a gradient signal:
// for each position i,
//
//	result = sign(bit i)*scale - outputErr*input[i]
//	bit i  = 1 if result > 0 else 0
//
// The sign term decays the weight toward its current value (a
// regularization pull), the product term perturbs it against the
// gradient. scale folds the learning rate and the binarization magnitude
// into one integer; tuning it is the caller's business. The mutation is
// irreversible.
//
// SAFETY: Assumes len(weights) >= WordsFor(len(input)).
func UpdateWeights(weights []uint64, input []int8, outputErr, scale int) {
	for i, v := range input {
		updateBit(weights, i, outputErr*int(v), scale)
	}
}

// UpdateWeightsInt is UpdateWeights for callers carrying wide fixed-point
// buffers. The two variants exist so the element type is picked
// explicitly at the call site instead of through generic dispatch.
//
// SAFETY: Assumes len(weights) >= WordsFor(len(input)).
func UpdateWeightsInt(weights []uint64, input []int, outputErr, scale int) {
	for i, v := range input {
		updateBit(weights, i, outputErr*v, scale)
	}
}

func updateBit(weights []uint64, i, grad, scale int) {
	word := i / bitvec.WordBits
	mask := uint64(1) << uint(i%bitvec.WordBits)

	sign := -1
	if weights[word]&mask != 0 {
		sign = 1
	}

	if sign*scale-grad > 0 {
		weights[word] |= mask
	} else {
		weights[word] &^= mask
	}
}
