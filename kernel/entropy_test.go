package kernel

import (
	"math/bits"
	"testing"

	"github.com/seehuhn/mt19937"
)

func TestRate(t *testing.T) {
	tests := []struct {
		expected, given, total int
		want                   float64
	}{
		{10, 10, 10, 0},
		{10, 0, 10, 1},
		{0, 10, 10, -1},
		{7, 2, 10, 0.5},
		{2, 7, 10, -0.5},
	}

	for _, tt := range tests {
		if got := Rate(tt.expected, tt.given, tt.total); got != tt.want {
			t.Errorf("Rate(%d, %d, %d) = %v, want %v", tt.expected, tt.given, tt.total, got, tt.want)
		}
	}
}

func TestEntropyIncreasing(t *testing.T) {
	rng := mt19937.New()
	rng.Seed(99)

	// Positive rate only sets bits: starting from zero the popcount can
	// never go down, and across many draws some bits do get set.
	total := 0
	for i := 0; i < 100; i++ {
		total += bits.OnesCount64(Entropy(0, 1.0, rng))
	}
	if total == 0 {
		t.Fatal("100 draws at rate 1.0 set no bits")
	}

	// And on an arbitrary word it never clears anything.
	const start = uint64(99484776326)
	for i := 0; i < 100; i++ {
		w := Entropy(start, 0.5, rng)
		if w&start != start {
			t.Fatalf("positive rate cleared bits: %#x -> %#x", start, w)
		}
	}
}

func TestEntropyDecreasing(t *testing.T) {
	rng := mt19937.New()
	rng.Seed(7)

	const start = uint64(99484776326)
	startCount := bits.OnesCount64(start)

	for i := 0; i < 100; i++ {
		w := Entropy(start, -1.0, rng)
		if got := bits.OnesCount64(w); got > startCount {
			t.Fatalf("negative rate raised popcount: %d > %d", got, startCount)
		}
		if w&^start != 0 {
			t.Fatalf("negative rate set new bits: %#x -> %#x", start, w)
		}
	}

	// An empty word stays empty.
	if w := Entropy(0, -1.0, rng); w != 0 {
		t.Errorf("Entropy(0, -1.0) = %#x, want 0", w)
	}
}

func TestEntropyZeroRate(t *testing.T) {
	// A zero rate must not consume randomness at all; a nil source
	// would panic otherwise.
	const w = uint64(0xABCD)
	if got := Entropy(w, 0, nil); got != w {
		t.Errorf("Entropy(w, 0) = %#x, want %#x", got, w)
	}
}

func TestEntropyFlipBound(t *testing.T) {
	rng := mt19937.New()
	rng.Seed(3)

	// |rate| = 1/64 bounds the draw to [0, 1): never any flip.
	const start = uint64(0xF0F0F0F0)
	for i := 0; i < 50; i++ {
		if got := Entropy(start, 1.0/64.0, rng); got != start {
			t.Fatalf("flip happened below the count bound: %#x -> %#x", start, got)
		}
	}
}
