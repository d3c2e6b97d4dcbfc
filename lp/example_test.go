package lp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rdynamic/lp"
)

// ExampleBranchAndBound_Solve picks the cheaper of two mutually exclusive items.
func ExampleBranchAndBound_Solve() {
	m := lp.NewModel("pick")
	a, b := m.Binary("a"), m.Binary("b")
	_ = m.AddConstraint("one", lp.Sum(a, b), lp.EQ, 1)
	_ = m.Minimize(lp.Expr{}.Plus(5, a).Plus(2, b))

	sol, err := lp.NewBranchAndBound().Solve(context.Background(), m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol.Status, sol.Objective, sol.Value(a), sol.Value(b))
	// Output:
	// Optimal 2 0 1
}
