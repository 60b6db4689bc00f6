// Package testutil provides testing utilities for bitnn.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded random generator for fixed-point vectors and naive
// bit-at-a-time reference implementations that the packed word kernels
// are checked against.
package testutil
