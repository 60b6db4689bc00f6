// Package activation provides the scalar activation functions used around
// the binary kernel: plain ReLU and the three-parameter RPReLU with its
// derivative.
//
// RPReLU is piecewise linear: slope beta below the learnable threshold
// gamma, unit slope above it, plus an additive offset zeta. All functions
// are pure and generic over signed fixed-point and floating-point types.
package activation
