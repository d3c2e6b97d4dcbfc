package trigrid_test

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/trigrid"
)

// ExampleNew builds T_2 and prints its border cycle.
func ExampleNew() {
	g, err := trigrid.New(2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Len(), len(g.CodeEdges()))
	fmt.Println(g.CoordinateBorder())
	// Output:
	// 6 9
	// [(0, 0) (1, 0) (2, 0) (1, 1) (0, 2) (0, 1)]
}
