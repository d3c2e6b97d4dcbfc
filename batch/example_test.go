package batch_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rdynamic/batch"
	"github.com/katalvlaran/rdynamic/builder"
	"github.com/katalvlaran/rdynamic/coloring"
	"github.com/katalvlaran/rdynamic/lp"
)

// ExampleRunner_SweepKR colors a triangle for k = 3..4 and r = 1.
func ExampleRunner_SweepKR() {
	k3, _ := builder.Build(builder.Complete(3))

	r := batch.NewRunner(batch.WithWorkers(2))
	rep := r.SweepKR(context.Background(), lp.NewBranchAndBound(), k3, coloring.ACR,
		batch.Range{From: 3, To: 4}, batch.Range{From: 1, To: 1})

	for k := 3; k <= 4; k++ {
		colors, _ := rep.Result(batch.Key{A: k, B: 1})
		fmt.Printf("k=%d colors=%d\n", k, coloring.UsedColors(colors))
	}
	fmt.Println(rep.Err())
	// Output:
	// k=3 colors=3
	// k=4 colors=3
	// <nil>
}
