package builder_test

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/builder"
)

// ExampleBuildGraph composes a triangle and a 4-cycle into one list.
func ExampleBuildGraph() {
	l, err := builder.BuildGraph(nil, builder.Complete(3), builder.Cycle(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(l.Len(), len(l.Edges()))
	fmt.Println(l.Edges()[3:])
	// Output:
	// 7 7
	// [[3 4] [3 6] [4 5] [5 6]]
}
