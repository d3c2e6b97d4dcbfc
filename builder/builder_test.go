package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/builder"
)

// TestBuilders_Functional runs table-driven checks of vertex/edge counts and
// regularity for every constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ctor       builder.Constructor
		wantV      int
		wantE      int
		wantDegree int // 0 means "not regular"
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5, 2},
		{"Complete(1)", builder.Complete(1), 1, 0, 0},
		{"Complete(4)", builder.Complete(4), 4, 6, 3},
		{"Wheel(5)", builder.Wheel(5), 5, 8, 0},
		{"Circulant(8,1,2)", builder.Circulant(8, 1, 2), 8, 16, 4},
		{"Circulant(6,3)", builder.Circulant(6, 3), 6, 3, 1},
		{"Circulant(7,1,5,0,1)", builder.Circulant(7, 1, 5, 0, 1), 7, 7, 2},
		{"Antiprism(3)", builder.Antiprism(3), 6, 12, 4},
		{"Antiprism(5)", builder.Antiprism(5), 10, 20, 4},
		{"Planar3Tree(0)", builder.Planar3Tree(0), 3, 3, 2},
		{"Planar3Tree(2)", builder.Planar3Tree(2), 7, 15, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l, err := builder.BuildGraph([]builder.BuilderOption{builder.WithValidation()}, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, l.Len())
			assert.Len(t, l.Edges(), tc.wantE)
			assert.False(t, adjacency.HasRepeatedEdges(l))
			if tc.wantDegree > 0 {
				for v, d := range l.Degrees() {
					assert.Equalf(t, tc.wantDegree, d, "vertex %d", v)
				}
			}
		})
	}
}

func TestWheel_HubIsLast(t *testing.T) {
	l, err := builder.Build(builder.Wheel(6))
	require.NoError(t, err)
	assert.Equal(t, 5, l.Degree(5))
	for v := 0; v < 5; v++ {
		assert.Equal(t, 3, l.Degree(v))
		assert.True(t, l.HasEdge(v, 5))
	}
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	l, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, l.Vertices())
	assert.Len(t, l.Edges(), 3+6)
	assert.False(t, l.HasEdge(2, 3))
	assert.True(t, l.HasEdge(3, 6))
}

func TestBuildGraph_SortedNeighbors(t *testing.T) {
	l, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSortedNeighbors()}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, l[0])
	assert.Equal(t, []int{0, 2}, l[3])
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
	}{
		{"Cycle(2)", builder.Cycle(2)},
		{"Complete(0)", builder.Complete(0)},
		{"Wheel(3)", builder.Wheel(3)},
		{"Circulant(1)", builder.Circulant(1, 1)},
		{"Antiprism(2)", builder.Antiprism(2)},
		{"Planar3Tree(-1)", builder.Planar3Tree(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.ctor)
			require.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}

	_, err := builder.BuildGraph(nil, builder.Cycle(3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestAntiprism_MatchesMatrix(t *testing.T) {
	// Ci_6(1,2) is the octahedron: every vertex misses exactly its antipode.
	l, err := builder.Build(builder.Antiprism(3))
	require.NoError(t, err)
	m, err := adjacency.ToMatrix(l)
	require.NoError(t, err)
	for i := range m {
		for j := range m[i] {
			want := 1
			if i == j || (i+3)%6 == j {
				want = 0
			}
			assert.Equalf(t, want, m[i][j], "m[%d][%d]", i, j)
		}
	}
}
