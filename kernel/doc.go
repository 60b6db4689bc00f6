// Package kernel implements the numeric core of a 1-bit neural network:
// the XNOR/popcount forward transform, sign-based backward error
// propagation, the binary weight-update rule, and the rate/entropy
// exploration utilities.
//
// All functions are pure transforms over caller-supplied buffers. Nothing
// here allocates, retains pointers, or validates preconditions: matching
// lengths and sufficient buffer sizes are caller obligations, and the
// functions index out of bounds if they are violated. Validation belongs
// one level up, in the bitnn facade.
//
// Per-column calls (Forward, Backward, UpdateWeights) touch disjoint
// weight columns and are safe to run concurrently across columns, with
// one exception: Backward accumulates into a shared input-error buffer,
// so concurrent callers must either partition accumulators per worker and
// reduce afterwards, or serialize.
package kernel
