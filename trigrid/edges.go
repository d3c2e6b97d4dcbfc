package trigrid

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/adjacency"
)

// AddEdges appends every edge to both adjacency views symmetrically, adds its
// sorted form to both edge lists and recomputes degrees. All coordinates are
// checked first; on ErrUnknownCoordinate nothing is applied.
//
// The border and triad candidates are left untouched.
func (g *Grid) AddEdges(edges []CoordinateEdge) error {
	pairs := make([][2]int, len(edges))
	for i, e := range edges {
		u, ok := g.codes[e[0]]
		if !ok {
			return fmt.Errorf("trigrid: AddEdges: %v: %w", e[0], ErrUnknownCoordinate)
		}
		v, ok := g.codes[e[1]]
		if !ok {
			return fmt.Errorf("trigrid: AddEdges: %v: %w", e[1], ErrUnknownCoordinate)
		}
		pairs[i] = [2]int{u, v}
	}

	for i, p := range pairs {
		u, v := p[0], p[1]
		g.adj.AddEdge(u, v)
		g.coordAdj[g.coords[u]] = append(g.coordAdj[g.coords[u]], g.coords[v])
		g.coordAdj[g.coords[v]] = append(g.coordAdj[g.coords[v]], g.coords[u])
		g.codeEdges = append(g.codeEdges, adjacency.NewEdge(u, v))
		g.crdEdges = append(g.crdEdges, NewCoordinateEdge(edges[i][0], edges[i][1]))
	}
	for code := range g.coords {
		g.degrees[code] = len(g.adj[code])
	}

	return nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		n:         g.n,
		coords:    append([]Coordinate(nil), g.coords...),
		codes:     make(map[Coordinate]int, len(g.codes)),
		adj:       g.adj.Clone(),
		coordAdj:  g.CoordinateAdjacency(),
		codeEdges: g.CodeEdges(),
		crdEdges:  g.CoordinateEdges(),
		degrees:   g.Degrees(),
	}
	for c, code := range g.codes {
		out.codes[c] = code
	}
	out.setBorder(g.Border())

	return out
}

// Materialize returns a copy of g whose adjacency, edges, degrees and border
// are replaced by adj and border. Vertex codes and coordinates are kept.
// Returns ErrUnknownVertex if adj or border mention a code outside g.
func (g *Grid) Materialize(adj adjacency.List, border []int) (*Grid, error) {
	for v, nbrs := range adj {
		if _, ok := g.CoordinateOf(v); !ok {
			return nil, fmt.Errorf("trigrid: Materialize: vertex %d: %w", v, ErrUnknownVertex)
		}
		for _, u := range nbrs {
			if _, ok := g.CoordinateOf(u); !ok {
				return nil, fmt.Errorf("trigrid: Materialize: neighbor %d of %d: %w", u, v, ErrUnknownVertex)
			}
		}
	}
	for _, b := range border {
		if _, ok := g.CoordinateOf(b); !ok {
			return nil, fmt.Errorf("trigrid: Materialize: border vertex %d: %w", b, ErrUnknownVertex)
		}
	}

	out := g.Clone()
	cp := adj.Clone()
	for code := range out.coords {
		cp.AddVertex(code)
	}
	out.setAdjacency(cp)
	out.setBorder(append([]int(nil), border...))

	return out, nil
}
