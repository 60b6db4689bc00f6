package popcnt

import (
	"math/bits"
	"os"
	"strings"
)

// Backend identifies a population-count implementation.
type Backend uint8

const (
	// Generic is the portable bit-clearing loop (no hardware support needed).
	Generic Backend = iota
	// Hardware lowers to the CPU's population-count instruction.
	Hardware
)

// String returns the string representation of a Backend.
func (b Backend) String() string {
	switch b {
	case Generic:
		return "generic"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseBackend parses a string into a Backend value.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "hardware":
		return Hardware, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeBackend is the selected population-count implementation.
	activeBackend Backend

	// hasOverride is true if BITNN_POPCNT was set.
	hasOverride bool

	// hasHWPopcount is set by the platform-specific init when the CPU
	// exposes a dedicated population-count instruction.
	hasHWPopcount bool
)

// Kernel function pointers - set once at init, zero runtime overhead.
var (
	kernelWord  = wordGeneric
	kernelWords = wordsGeneric
)

// initBackend is called from platform-specific init functions after CPU
// features are detected.
func initBackend() {
	if override := os.Getenv("BITNN_POPCNT"); override != "" {
		if b, ok := ParseBackend(override); ok {
			hasOverride = true
			if b == Generic || hasHWPopcount {
				activeBackend = b
				setKernels(activeBackend)
				return
			}
			// Requested backend unavailable - fall through to auto-detection.
		}
	}

	if hasHWPopcount {
		activeBackend = Hardware
	} else {
		activeBackend = Generic
	}
	setKernels(activeBackend)
}

func setKernels(b Backend) {
	switch b {
	case Hardware:
		kernelWord = wordHardware
		kernelWords = wordsHardware
	default:
		kernelWord = wordGeneric
		kernelWords = wordsGeneric
	}
}

// ActiveBackend returns the currently active backend.
func ActiveBackend() Backend {
	return activeBackend
}

// IsOverridden returns true if BITNN_POPCNT was set.
func IsOverridden() bool {
	return hasOverride
}

// Word returns the number of set bits in w.
func Word(w uint64) int {
	return kernelWord(w)
}

// Words returns the total number of set bits across all words.
func Words(ws []uint64) int {
	return kernelWords(ws)
}

// ==============================================================================
// Hardware implementations
// ==============================================================================

// wordHardware relies on the compiler intrinsic for bits.OnesCount64,
// which emits POPCNT/CNT on the platforms that select this backend.
func wordHardware(w uint64) int {
	return bits.OnesCount64(w)
}

func wordsHardware(ws []uint64) int {
	var total int

	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= len(ws); i += 4 {
		total += bits.OnesCount64(ws[i])
		total += bits.OnesCount64(ws[i+1])
		total += bits.OnesCount64(ws[i+2])
		total += bits.OnesCount64(ws[i+3])
	}
	for ; i < len(ws); i++ {
		total += bits.OnesCount64(ws[i])
	}
	return total
}

// ==============================================================================
// Generic implementations
// ==============================================================================

// wordGeneric counts set bits by repeatedly clearing the lowest one
// (Kernighan's method). Runs in O(set bits), not O(word width).
func wordGeneric(w uint64) int {
	var c int
	for ; w != 0; w &= w - 1 {
		c++
	}
	return c
}

func wordsGeneric(ws []uint64) int {
	var total int
	for _, w := range ws {
		total += wordGeneric(w)
	}
	return total
}
