package star_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rdynamic/star"
	"github.com/katalvlaran/rdynamic/trigrid"
)

// ExampleMaxDegree shows the hub degree of the max-degree family on T_4.
func ExampleMaxDegree() {
	g, err := star.MaxDegree(4)
	if err != nil {
		fmt.Println(err)
		return
	}
	hub, _ := g.CodeOf(trigrid.Coordinate{X: 2, Y: 2})
	fmt.Println(g.Degree(hub), g.MaxDegree())
	// Output:
	// 13 13
}

// ExampleGenerator_Generate enumerates the star graphs of T_2.
func ExampleGenerator_Generate() {
	base, _ := trigrid.New(2)
	res, err := star.New(base).Generate(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, g := range res.Graphs {
		if !star.IsTerminal(g) {
			fmt.Println("not terminal")
		}
	}
	fmt.Println(len(res.Graphs) > 0, res.Truncated)
	// Output:
	// true false
}
