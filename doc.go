// Package bitnn provides a compute kernel for 1-bit (binary) neural
// networks.
//
// Weights and activations are single bits packed into uint64 words, and
// linear transformations run on XNOR-style bitwise operations plus
// population counts instead of floating-point multiply-accumulate. That
// makes inference and training cheap enough for resource-constrained
// devices.
//
// # Quick Start
//
//	layer, _ := bitnn.New(256, 64, bitnn.WithThreshold(0))
//
//	z, _ := layer.Forward(ctx, input)   // pre-activations, one per output cell
//	y := layer.Activate(z)              // RPReLU
//
//	inputErr, _ := layer.Backward(ctx, outputErr)
//	_ = layer.Update(ctx, input, outputErr, 2)
//	_ = layer.Perturb(0.1)              // stochastic bit exploration
//
// # Layers of the API
//
// The root package is the validated facade: it owns buffer sizing, the
// per-column locking discipline, parallel fan-out, and structured
// logging. The packages underneath are deliberately check-free:
//
//   - bitvec: the packed bit-vector data model and binarization
//   - kernel: forward/backward/update/entropy word kernels
//   - activation: ReLU, RPReLU and its derivative
//
// Anything beyond single-layer numerics (graph composition, training
// orchestration, serialization) belongs to the caller. The bit layout
// (word i/64, bit i%64, LSB first, ceil(m/64) words per column) is the
// stable contract for interop with externally trained weight tables.
package bitnn
