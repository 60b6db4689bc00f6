package kernel

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/bitnn/bitvec"
	"github.com/hupe1980/bitnn/testutil"
)

// The packed forward transform must agree with two independent
// references over random data: a naive bit-at-a-time evaluation and the
// float dot product of the {1,0} activation mask with the {+1,-1} weight
// sign vector.
func TestForwardAgainstReferences(t *testing.T) {
	rng := testutil.NewRNG(1234)

	for _, n := range []int{1, 5, 63, 64, 65, 200, 1024} {
		words := bitvec.WordsFor(n)
		w := make([]uint64, words)
		rng.FillWords(w)

		values := make([]int8, n)
		rng.FillInt8(values)

		x := bitvec.New(n)
		bitvec.Binarize(x, values, 0)

		got := int(Forward(w, x))

		if want := testutil.NaiveForward(w, x, n); got != want {
			t.Errorf("n=%d: Forward = %d, naive reference = %d", n, got, want)
		}

		dot := floats.Dot(testutil.MaskExpand(x, n), testutil.SignExpand(w, n))
		if float64(got) != dot {
			t.Errorf("n=%d: Forward = %d, dot-product reference = %v", n, got, dot)
		}
	}
}

func TestBackwardAgainstReference(t *testing.T) {
	rng := testutil.NewRNG(777)

	n := 130
	w := make([]uint64, bitvec.WordsFor(n))
	rng.FillWords(w)

	inputErr := make([]int, n)
	Backward(w, n, 5, inputErr)

	signs := testutil.SignExpand(w, n)
	for i := 0; i < n; i++ {
		if want := int(signs[i]) * 5; inputErr[i] != want {
			t.Fatalf("inputErr[%d] = %d, want %d", i, inputErr[i], want)
		}
	}
}
