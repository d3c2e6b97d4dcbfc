package star_test

import (
	"context"
	"sort"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/metrics"
	"github.com/katalvlaran/rdynamic/search"
	"github.com/katalvlaran/rdynamic/star"
	"github.com/katalvlaran/rdynamic/trigrid"
)

func grid(t testing.TB, n int) *trigrid.Grid {
	t.Helper()
	g, err := trigrid.New(n)
	require.NoError(t, err)
	return g
}

func fingerprints(graphs []*trigrid.Grid) []uint64 {
	out := make([]uint64, len(graphs))
	for i, g := range graphs {
		out[i] = adjacency.Fingerprint(g.Adjacency())
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestGenerate_OrderTwo(t *testing.T) {
	base := grid(t, 2)
	res, err := star.New(base).Generate(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, res.Graphs)
	assert.False(t, res.Truncated)
	assert.Len(t, res.Histories, len(res.Graphs))
	assert.NotEmpty(t, res.QueueSizes)

	baseEdges := len(base.CodeEdges())
	for i, g := range res.Graphs {
		assert.Len(t, g.Border(), 3)
		assert.True(t, star.IsTerminal(g))
		assert.False(t, adjacency.HasRepeatedEdges(g.Adjacency()))
		assert.Len(t, res.Histories[i], 3)
		// one chord per clipped vertex
		assert.Len(t, g.CodeEdges(), baseEdges+3)
		assert.Equal(t, base.Len(), g.Len())
	}
	assert.Equal(t, star.Diagnostics{Graphs: len(res.Graphs)}, star.Diagnose(res.Graphs))

	// base is untouched
	assert.Len(t, base.Border(), 6)
	assert.Len(t, base.CodeEdges(), baseEdges)
}

func TestGenerate_DistinctGraphs(t *testing.T) {
	res, err := star.New(grid(t, 3)).Generate(context.Background())
	require.NoError(t, err)
	fps := fingerprints(res.Graphs)
	for i := 1; i < len(fps); i++ {
		assert.NotEqual(t, fps[i-1], fps[i])
	}
	for _, g := range res.Graphs {
		assert.True(t, star.IsTerminal(g))
	}

	all, err := star.New(grid(t, 3), star.WithDistinct(false)).Generate(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all.Graphs), len(res.Graphs))
	assert.Equal(t, fps, uniq(fingerprints(all.Graphs)))
}

func uniq(in []uint64) []uint64 {
	var out []uint64
	for i, v := range in {
		if i == 0 || v != in[i-1] {
			out = append(out, v)
		}
	}
	return out
}

func TestGenerate_StrategiesAgree(t *testing.T) {
	pq, err := star.New(grid(t, 3), star.WithStrategy(search.Priority)).Generate(context.Background())
	require.NoError(t, err)
	st, err := star.New(grid(t, 3), star.WithStrategy(search.Stack)).Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fingerprints(pq.Graphs), fingerprints(st.Graphs))
}

func TestGenerate_SmallBorders(t *testing.T) {
	for _, n := range []int{0, 1} {
		base := grid(t, n)
		res, err := star.New(base).Generate(context.Background())
		require.NoError(t, err)
		require.Len(t, res.Graphs, 1)
		assert.Equal(t, base.CodeEdges(), res.Graphs[0].CodeEdges())
		assert.Empty(t, res.Histories[0])
	}
}

func TestGenerate_MaxGraphs(t *testing.T) {
	res, err := star.New(grid(t, 2), star.WithMaxGraphs(1)).Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Graphs, 1)
	assert.True(t, res.Truncated)

	res, err = star.New(grid(t, 2), star.WithMaxGraphs(0)).Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Graphs)
	assert.True(t, res.Truncated)

	assert.Panics(t, func() { star.WithMaxGraphs(-2) })
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := star.New(grid(t, 3)).Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Graphs)
}

func TestGenerate_NilBase(t *testing.T) {
	_, err := star.New(nil).Generate(context.Background())
	require.ErrorIs(t, err, star.ErrNilGrid)
}

func TestGenerate_Metrics(t *testing.T) {
	reg := metrics.NewRegistry()
	res, err := star.New(grid(t, 2), star.WithMetrics(reg)).Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(len(res.Graphs)), testutil.ToFloat64(reg.StarGraphsTotal))
	assert.Equal(t, float64(len(res.QueueSizes)), testutil.ToFloat64(reg.StarStatesExpanded))
	assert.Equal(t, 0.0, testutil.ToFloat64(reg.StarQueueSize))
}

func TestVerifyNotAdjacent(t *testing.T) {
	adj := adjacency.List{0: {1}, 1: {0, 2}, 2: {1}}
	assert.True(t, star.VerifyNotAdjacent(search.Triad{Prev: 0, Middle: 1, Next: 2}, adj))
	adj.AddEdge(0, 2)
	assert.False(t, star.VerifyNotAdjacent(search.Triad{Prev: 0, Middle: 1, Next: 2}, adj))
	assert.False(t, star.VerifyNotAdjacent(search.Triad{Prev: 0, Middle: 1, Next: 0}, adj))
}

func TestIsTerminal_Base(t *testing.T) {
	assert.False(t, star.IsTerminal(grid(t, 2)))
	assert.True(t, star.IsTerminal(grid(t, 1)))
}

func TestMaxDegree(t *testing.T) {
	_, err := star.MaxDegree(1)
	require.ErrorIs(t, err, star.ErrOrderTooSmall)

	g2, err := star.MaxDegree(2)
	require.NoError(t, err)
	assert.Len(t, g2.CodeEdges(), 9+3)

	g3, err := star.MaxDegree(3)
	require.NoError(t, err)
	hub, _ := g3.CodeOf(trigrid.Coordinate{X: 1, Y: 2})
	assert.Equal(t, 4+5, g3.Degree(hub))
	assert.Equal(t, g3.Degree(hub), g3.MaxDegree())

	for _, n := range []int{4, 5, 6} {
		g, err := star.MaxDegree(n)
		require.NoError(t, err)
		assert.False(t, adjacency.HasRepeatedEdges(g.Adjacency()))
		// hub: 4 lattice neighbors plus every border vertex but three
		assert.Equal(t, 4+3*n-3, g.MaxDegree(), "n=%d", n)
	}
}
