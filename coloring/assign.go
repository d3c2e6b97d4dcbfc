package coloring

import "github.com/katalvlaran/rdynamic/trigrid"

// AssignFunc colors every vertex of g with fn applied to its coordinate.
// It is the entry point for closed-form colorings such as
// (x + 2y) mod 3, which can then be verified with IsRDynamic.
func AssignFunc(g *trigrid.Grid, fn func(trigrid.Coordinate) int) map[int]int {
	out := make(map[int]int, g.Len())
	for code, c := range g.Coordinates() {
		out[code] = fn(c)
	}

	return out
}

// UsedColors counts the distinct colors of an assignment.
func UsedColors(colors map[int]int) int {
	used := make(map[int]struct{}, len(colors))
	for _, c := range colors {
		used[c] = struct{}{}
	}

	return len(used)
}
