// Package popcnt provides population-count primitives with runtime
// backend selection.
//
// Two backends exist: a hardware-backed one that lowers to the CPU's
// population-count instruction (POPCNT on x86-64, CNT on ARM64) and a
// portable bit-clearing loop. The backend is chosen once at package init
// based on detected CPU features and can be overridden with the
// BITNN_POPCNT environment variable ("hardware" or "generic").
//
// All functions are defined for every input; Word(0) returns 0.
package popcnt
