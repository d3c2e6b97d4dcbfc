package trigrid

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/search"
)

// Grid is T_n held in two synced views. Vertex codes and coordinates never
// change after New; adjacency, edges, degrees and border may be replaced
// through AddEdges and Materialize.
type Grid struct {
	n int

	coords []Coordinate        // code -> coordinate
	codes  map[Coordinate]int  // coordinate -> code

	adj       adjacency.List
	coordAdj  map[Coordinate][]Coordinate
	codeEdges []CodeEdge
	crdEdges  []CoordinateEdge
	degrees   map[int]int

	border []int
	triads []search.Triad
}

// New builds the triangular grid T_n.
// Returns ErrNegativeOrder if n < 0.
// Complexity: O(V log V) time, O(V) memory.
func New(n int) (*Grid, error) {
	if n < 0 {
		return nil, fmt.Errorf("trigrid: n=%d: %w", n, ErrNegativeOrder)
	}
	size := (n + 1) * (n + 2) / 2
	g := &Grid{
		n:      n,
		coords: make([]Coordinate, 0, size),
		codes:  make(map[Coordinate]int, size),
	}
	for ni := 0; ni <= n; ni++ {
		for x := 0; x <= ni; x++ {
			c := Coordinate{X: x, Y: ni - x}
			g.codes[c] = len(g.coords)
			g.coords = append(g.coords, c)
		}
	}

	adj := make(adjacency.List, size)
	for code, c := range g.coords {
		nbrs := make([]int, 0, len(neighborOffsets))
		for _, d := range neighborOffsets {
			if other, ok := g.codes[Coordinate{X: c.X + d[0], Y: c.Y + d[1]}]; ok {
				nbrs = append(nbrs, other)
			}
		}
		// generation order
		sort.Ints(nbrs)
		adj[code] = nbrs
	}
	g.setAdjacency(adj)
	g.setBorder(g.outerBorder())

	return g, nil
}

// outerBorder lists the border cycle in code form.
func (g *Grid) outerBorder() []int {
	n := g.n
	if n == 0 {
		return []int{g.codes[Coordinate{}]}
	}
	border := make([]int, 0, 3*n)
	for x := 0; x <= n; x++ {
		border = append(border, g.codes[Coordinate{X: x, Y: 0}])
	}
	for i := 1; i <= n; i++ {
		border = append(border, g.codes[Coordinate{X: n - i, Y: i}])
	}
	for y := n - 1; y >= 1; y-- {
		border = append(border, g.codes[Coordinate{X: 0, Y: y}])
	}

	return border
}

// setAdjacency installs adj as the code view and derives every other view
// from it.
func (g *Grid) setAdjacency(adj adjacency.List) {
	g.adj = adj
	g.coordAdj = make(map[Coordinate][]Coordinate, len(adj))
	g.degrees = make(map[int]int, len(adj))
	for code, c := range g.coords {
		nbrs := adj[code]
		cn := make([]Coordinate, len(nbrs))
		for i, u := range nbrs {
			cn[i] = g.coords[u]
		}
		g.coordAdj[c] = cn
		g.degrees[code] = len(nbrs)
	}
	g.codeEdges = adj.Edges()
	g.crdEdges = make([]CoordinateEdge, len(g.codeEdges))
	for i, e := range g.codeEdges {
		g.crdEdges[i] = NewCoordinateEdge(g.coords[e[0]], g.coords[e[1]])
	}
}

func (g *Grid) setBorder(border []int) {
	g.border = border
	g.triads = search.Triads(border)
}

// N returns the grid order.
func (g *Grid) N() int { return g.n }

// Len returns the number of vertices, (n+1)(n+2)/2.
func (g *Grid) Len() int { return len(g.coords) }

// CodeOf returns the code of c and whether c is a grid vertex.
func (g *Grid) CodeOf(c Coordinate) (int, bool) {
	code, ok := g.codes[c]

	return code, ok
}

// CoordinateOf returns the coordinate of code and whether code exists.
func (g *Grid) CoordinateOf(code int) (Coordinate, bool) {
	if code < 0 || code >= len(g.coords) {
		return Coordinate{}, false
	}

	return g.coords[code], true
}

// Coordinates returns all coordinates indexed by code.
func (g *Grid) Coordinates() []Coordinate {
	return append([]Coordinate(nil), g.coords...)
}

// Adjacency returns a copy of the code-view adjacency list.
func (g *Grid) Adjacency() adjacency.List { return g.adj.Clone() }

// CoordinateAdjacency returns a copy of the coordinate-view adjacency.
func (g *Grid) CoordinateAdjacency() map[Coordinate][]Coordinate {
	out := make(map[Coordinate][]Coordinate, len(g.coordAdj))
	for c, nbrs := range g.coordAdj {
		out[c] = append([]Coordinate{}, nbrs...)
	}

	return out
}

// CodeEdges returns the canonical edge list in code form.
func (g *Grid) CodeEdges() []CodeEdge {
	return append([]CodeEdge(nil), g.codeEdges...)
}

// CoordinateEdges returns the edge list in coordinate form, in the same
// order as CodeEdges.
func (g *Grid) CoordinateEdges() []CoordinateEdge {
	return append([]CoordinateEdge(nil), g.crdEdges...)
}

// Border returns the border cycle as codes.
func (g *Grid) Border() []int { return append([]int(nil), g.border...) }

// CoordinateBorder returns the border cycle as coordinates.
func (g *Grid) CoordinateBorder() []Coordinate {
	out := make([]Coordinate, len(g.border))
	for i, code := range g.border {
		out[i] = g.coords[code]
	}

	return out
}

// TriadCandidates returns every cyclic triad of the border, indexed by the
// position of its middle vertex.
func (g *Grid) TriadCandidates() []search.Triad {
	return append([]search.Triad(nil), g.triads...)
}

// Degree returns the adjacency-list length of code (0 for unknown codes).
func (g *Grid) Degree(code int) int { return g.degrees[code] }

// Degrees returns a copy of the degree map.
func (g *Grid) Degrees() map[int]int {
	out := make(map[int]int, len(g.degrees))
	for k, v := range g.degrees {
		out[k] = v
	}

	return out
}

// MaxDegree returns the largest vertex degree.
func (g *Grid) MaxDegree() int {
	best := 0
	for _, d := range g.degrees {
		if d > best {
			best = d
		}
	}

	return best
}

// IsBorder reports whether code lies on the current border.
func (g *Grid) IsBorder(code int) bool {
	for _, b := range g.border {
		if b == code {
			return true
		}
	}

	return false
}
