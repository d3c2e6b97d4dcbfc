package coloring_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/builder"
	"github.com/katalvlaran/rdynamic/coloring"
	"github.com/katalvlaran/rdynamic/lp"
	"github.com/katalvlaran/rdynamic/trigrid"
)

func build(t *testing.T, con builder.Constructor) adjacency.List {
	t.Helper()
	l, err := builder.Build(con)
	require.NoError(t, err)
	return l
}

func solver() lp.Solver { return lp.NewBranchAndBound() }

//----------------------------------------------------------------------------//
// Parameters
//----------------------------------------------------------------------------//

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]coloring.Method{
		"ACR": coloring.ACR, "ACR-H": coloring.ACRH, "ACR_H": coloring.ACRH,
		"ACR-R": coloring.ACRR, "ACR_RH": coloring.ACRRH, " ACR-RH ": coloring.ACRRH,
	} {
		got, err := coloring.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := coloring.ParseMethod("ACR-X")
	require.ErrorIs(t, err, coloring.ErrUnknownMethod)

	assert.True(t, coloring.ACRRH.Hard())
	assert.True(t, coloring.ACRRH.Incremental())
	assert.False(t, coloring.ACR.Hard())
	assert.False(t, coloring.ACRH.Incremental())
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, coloring.Params{Method: coloring.ACR, K: 1, R: 0}.Validate())

	err := coloring.Params{Method: "nope", K: 3, R: 1}.Validate()
	require.ErrorIs(t, err, coloring.ErrUnknownMethod)

	err = coloring.Params{Method: coloring.ACR, K: 0, R: 1}.Validate()
	require.ErrorIs(t, err, coloring.ErrInvalidParams)
	var pe *coloring.ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "K", pe.Field)

	err = coloring.Params{Method: coloring.ACR, K: 2, R: -1}.Validate()
	require.ErrorIs(t, err, coloring.ErrInvalidParams)

	_, err = coloring.Build(adjacency.List{0: {1}}, coloring.Params{Method: coloring.ACR, K: 2, R: 1}, nil)
	require.ErrorIs(t, err, coloring.ErrInvalidGraph)
}

//----------------------------------------------------------------------------//
// Model construction
//----------------------------------------------------------------------------//

func TestBuild_ConstraintCounts(t *testing.T) {
	k3 := build(t, builder.Complete(3))
	cases := []struct {
		method coloring.Method
		want   int
	}{
		// C1 3, C2 9, C3 3, C4 2, C5 3, C6 9, C7 18
		{coloring.ACR, 47},
		{coloring.ACRR, 47},
		// no C3, C4
		{coloring.ACRH, 42},
		{coloring.ACRRH, 42},
	}
	for _, tc := range cases {
		t.Run(tc.method.String(), func(t *testing.T) {
			m, err := coloring.Build(k3, coloring.Params{Method: tc.method, K: 3, R: 1}, nil)
			require.NoError(t, err)
			assert.Equal(t, 3+9+9, m.LP.NumVars())
			assert.Len(t, m.LP.Constraints(), tc.want)
			assert.Equal(t, coloring.DefaultModelName, m.LP.Name)
		})
	}
}

func TestBuild_WarmStart(t *testing.T) {
	k3 := build(t, builder.Complete(3))
	prev := &coloring.Solution{
		Vertices: []int{0, 1},
		W:        []float64{1, 1, 0},
		X:        [][]float64{{1, 0, 0}, {0, 1, 0}},
		Q:        [][]float64{{0, 1, 0}, {1, 0, 0}},
	}

	m, err := coloring.Build(k3, coloring.Params{Method: coloring.ACRR, K: 3, R: 1}, prev)
	require.NoError(t, err)
	// 2 leading used colors + 2 vertices × 3 colors
	assert.Len(t, m.LP.Constraints(), 47+2+6)

	plain, err := coloring.Build(k3, coloring.Params{Method: coloring.ACR, K: 3, R: 1}, prev)
	require.NoError(t, err)
	assert.Len(t, plain.LP.Constraints(), 47)

	bad := *prev
	bad.Vertices = []int{0, 99}
	_, err = coloring.Build(k3, coloring.Params{Method: coloring.ACRR, K: 3, R: 1}, &bad)
	require.ErrorIs(t, err, coloring.ErrWarmStartMismatch)

	_, err = coloring.Build(k3, coloring.Params{Method: coloring.ACRRH, K: 2, R: 1}, prev)
	require.ErrorIs(t, err, coloring.ErrWarmStartMismatch)

	wide := *prev
	wide.X = [][]float64{{1, 0, 0}, {0, 1, 0, 0}}
	require.NotPanics(t, func() {
		_, err = coloring.Build(k3, coloring.Params{Method: coloring.ACRR, K: 3, R: 1}, &wide)
	})
	require.ErrorIs(t, err, coloring.ErrWarmStartMismatch)
}

//----------------------------------------------------------------------------//
// Solving
//----------------------------------------------------------------------------//

func TestColor_TriangleACR(t *testing.T) {
	k3 := build(t, builder.Complete(3))
	for _, k := range []int{3, 4, 5} {
		params := coloring.Params{Method: coloring.ACR, K: k, R: 1}
		res, err := coloring.Color(context.Background(), solver(), k3, params)
		require.NoError(t, err)
		require.NoError(t, coloring.RequireOptimal(res))
		assert.Equal(t, 3, res.UsedColors)
		assert.Equal(t, 3.0, res.Objective)
		assert.True(t, coloring.IsRDynamic(k3, res.Colors, 1))
		assert.True(t, coloring.Check(k3, params, res.Solution).OK)
	}
}

func TestColor_CycleFiveIsFiveDynamic(t *testing.T) {
	c5 := build(t, builder.Cycle(5))
	params := coloring.Params{Method: coloring.ACR, K: 5, R: 2}
	res, err := coloring.Color(context.Background(), solver(), c5, params)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	assert.Equal(t, 5, res.UsedColors)
	assert.True(t, coloring.IsRDynamic(c5, res.Colors, 2))
}

func TestColor_AllMethodsFeasible(t *testing.T) {
	w5 := build(t, builder.Wheel(5))
	for _, method := range coloring.Methods {
		t.Run(method.String(), func(t *testing.T) {
			params := coloring.Params{Method: method, K: 5, R: 2}
			res, err := coloring.Color(context.Background(), solver(), w5, params)
			require.NoError(t, err)
			require.Equal(t, lp.Optimal, res.Status)
			assert.True(t, coloring.IsRDynamic(w5, res.Colors, 2))
			assert.True(t, coloring.Check(w5, params, res.Solution).OK)
		})
	}
}

func TestColor_InfeasibleBudget(t *testing.T) {
	k3 := build(t, builder.Complete(3))
	res, err := coloring.Color(context.Background(), solver(), k3, coloring.Params{Method: coloring.ACR, K: 2, R: 1})
	require.NoError(t, err)
	assert.Equal(t, lp.Infeasible, res.Status)
	assert.Nil(t, res.Colors)
	require.ErrorIs(t, coloring.RequireOptimal(res), coloring.ErrNotOptimal)
}

func TestSolve_SolverError(t *testing.T) {
	boom := errors.New("backend down")
	failing := lp.SolverFunc(func(context.Context, *lp.Model) (*lp.Solution, error) {
		return &lp.Solution{Status: lp.NotSolved}, boom
	})
	m, err := coloring.Build(build(t, builder.Complete(3)), coloring.Params{Method: coloring.ACR, K: 3, R: 1}, nil)
	require.NoError(t, err)
	res, err := coloring.Solve(context.Background(), failing, m)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, lp.NotSolved, res.Status)
}

// TestChain_WarmStart checks that an ACR-R chain over T_1, T_2 never uses
// fewer colors than the previous step nor more than K, and keeps old colors.
func TestChain_WarmStart(t *testing.T) {
	var graphs []adjacency.List
	for n := 1; n <= 2; n++ {
		g, err := trigrid.New(n)
		require.NoError(t, err)
		graphs = append(graphs, g.Adjacency())
	}
	params := coloring.Params{Method: coloring.ACRR, K: 4, R: 1}
	results, err := coloring.Chain(context.Background(), solver(), graphs, params)
	require.NoError(t, err)
	require.Len(t, results, 2)

	first, second := results[0], results[1]
	assert.GreaterOrEqual(t, second.UsedColors, first.UsedColors)
	assert.LessOrEqual(t, second.UsedColors, params.K)
	for v, c := range first.Colors {
		assert.Equal(t, c, second.Colors[v], "vertex %d", v)
	}
	assert.True(t, coloring.IsRDynamic(graphs[1], second.Colors, 1))
}

func TestChain_StopsOnNonOptimal(t *testing.T) {
	graphs := []adjacency.List{build(t, builder.Complete(3)), build(t, builder.Complete(4))}
	results, err := coloring.Chain(context.Background(), solver(), graphs, coloring.Params{Method: coloring.ACRR, K: 3, R: 1})
	require.ErrorIs(t, err, coloring.ErrNotOptimal)
	assert.Len(t, results, 2)
}

//----------------------------------------------------------------------------//
// Checking and export
//----------------------------------------------------------------------------//

func TestCheck_ReportsFirstViolation(t *testing.T) {
	k3 := build(t, builder.Complete(3))
	params := coloring.Params{Method: coloring.ACR, K: 3, R: 1}
	res, err := coloring.Color(context.Background(), solver(), k3, params)
	require.NoError(t, err)

	broken := *res.Solution
	broken.X = [][]float64{{1, 1, 0}, res.Solution.X[1], res.Solution.X[2]}
	got := coloring.Check(k3, params, &broken)
	assert.False(t, got.OK)
	assert.Equal(t, 1, got.Constraint)

	broken = *res.Solution
	broken.Q = [][]float64{{0, 0, 0}, res.Solution.Q[1], res.Solution.Q[2]}
	got = coloring.Check(k3, params, &broken)
	assert.Equal(t, 5, got.Constraint)
}

func TestIsRDynamic(t *testing.T) {
	c4 := build(t, builder.Cycle(4))
	assert.True(t, coloring.IsRDynamic(c4, map[int]int{0: 0, 1: 1, 2: 0, 3: 1}, 1))
	assert.False(t, coloring.IsRDynamic(c4, map[int]int{0: 0, 1: 1, 2: 0, 3: 1}, 2))
	assert.True(t, coloring.IsRDynamic(c4, map[int]int{0: 0, 1: 1, 2: 2, 3: 3}, 2))
	assert.False(t, coloring.IsRDynamic(c4, map[int]int{0: 0, 1: 0, 2: 1, 3: 1}, 1))
	assert.False(t, coloring.IsRDynamic(c4, map[int]int{0: 0}, 0))
}

func TestAssignFunc_ClosedForm(t *testing.T) {
	g, err := trigrid.New(4)
	require.NoError(t, err)
	colors := coloring.AssignFunc(g, func(c trigrid.Coordinate) int { return (c.X + 2*c.Y) % 3 })
	assert.Len(t, colors, g.Len())
	assert.Equal(t, 3, coloring.UsedColors(colors))
	assert.True(t, coloring.IsRDynamic(g.Adjacency(), colors, 2))
	assert.False(t, coloring.IsRDynamic(g.Adjacency(), colors, 3))
}

func TestWriteCSV(t *testing.T) {
	sol := &coloring.Solution{
		Vertices: []int{0, 1},
		W:        []float64{1, 1},
		X:        [][]float64{{1, 0}, {0, 1}},
		Q:        [][]float64{{0, 1}, {1, 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, coloring.WriteCSV(&buf, sol, coloring.FamilyX))
	assert.Equal(t, "1.0,0.0\n0.0,1.0\n", buf.String())

	buf.Reset()
	require.NoError(t, coloring.WriteCSV(&buf, sol, coloring.FamilyW))
	assert.Equal(t, "1.0,1.0\n", buf.String())

	require.Error(t, coloring.WriteCSV(&buf, sol, "z"))
}
