package bitnn_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/bitnn"
	"github.com/hupe1980/bitnn/bitvec"
)

func Example() {
	ctx := context.Background()

	// Five input cells, four output cells, binarization threshold 2.
	layer, err := bitnn.New(5, 4, bitnn.WithThreshold(2))
	if err != nil {
		panic(err)
	}

	// Load an externally trained weight table, one packed column per
	// output cell.
	for j, column := range []bitvec.Vector{{19}, {28}, {31}, {29}} {
		if err := layer.SetColumn(j, column); err != nil {
			panic(err)
		}
	}

	z, err := layer.Forward(ctx, []int8{5, -2, 0, 3, -1})
	if err != nil {
		panic(err)
	}

	fmt.Println(z)
	// Output: [0 0 2 2]
}
