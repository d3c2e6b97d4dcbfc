package trigrid

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/adjacency"
)

// Coordinate is a lattice position of T_n.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Less orders coordinates by X, then Y.
func (c Coordinate) Less(o Coordinate) bool {
	if c.X != o.X {
		return c.X < o.X
	}

	return c.Y < o.Y
}

// CoordinateEdge is an undirected edge in the coordinate view.
type CoordinateEdge [2]Coordinate

// NewCoordinateEdge returns the canonical (sorted) edge between a and b.
func NewCoordinateEdge(a, b Coordinate) CoordinateEdge {
	if b.Less(a) {
		a, b = b, a
	}

	return CoordinateEdge{a, b}
}

// CodeEdge is an undirected edge in the code view, stored sorted.
type CodeEdge = adjacency.Edge

// neighborOffsets are the six lattice directions of the triangular grid.
var neighborOffsets = [6][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, -1}, {-1, 1}}

// Adjacent reports whether a and b satisfy the triangular-lattice edge rule.
func Adjacent(a, b Coordinate) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	adx, ady := abs(dx), abs(dy)
	if adx+ady == 1 {
		return true
	}

	return adx == 1 && ady == 1 && dx != dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
