package star

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/trigrid"
)

// MinMaxDegreeOrder is the smallest grid order with a max-degree family.
const MinMaxDegreeOrder = 2

func crd(x, y int) trigrid.Coordinate { return trigrid.Coordinate{X: x, Y: y} }

// MaxDegree returns T_n with a fixed chord set that concentrates degree on a
// single hub. For n = 2 and n = 3 the chord sets are tabulated; for n ≥ 4 the
// hub sits in the middle of the hypotenuse and is joined to every border
// vertex except itself and its two hypotenuse neighbors.
// The border of the returned grid is the original outer cycle.
func MaxDegree(n int) (*trigrid.Grid, error) {
	if n < MinMaxDegreeOrder {
		return nil, fmt.Errorf("star: MaxDegree: n=%d < min=%d: %w", n, MinMaxDegreeOrder, ErrOrderTooSmall)
	}
	g, err := trigrid.New(n)
	if err != nil {
		return nil, fmt.Errorf("star: MaxDegree: %w", err)
	}

	var chords []trigrid.CoordinateEdge
	switch n {
	case 2:
		chords = []trigrid.CoordinateEdge{
			{crd(0, 0), crd(0, 2)},
			{crd(0, 0), crd(2, 0)},
			{crd(0, 2), crd(2, 0)},
		}
	case 3:
		chords = []trigrid.CoordinateEdge{
			{crd(0, 3), crd(0, 1)},
			{crd(1, 2), crd(3, 0)},
			{crd(1, 2), crd(2, 0)},
			{crd(1, 2), crd(1, 0)},
			{crd(1, 2), crd(0, 1)},
			{crd(1, 2), crd(0, 0)},
		}
	default:
		hub := crd(n/2, n/2)
		if n%2 == 1 {
			hub = crd(n/2+1, n/2)
		}
		omit := map[trigrid.Coordinate]bool{
			hub:                   true,
			crd(hub.X+1, hub.Y-1): true,
			crd(hub.X-1, hub.Y+1): true,
		}
		for _, b := range g.CoordinateBorder() {
			if !omit[b] {
				chords = append(chords, trigrid.CoordinateEdge{hub, b})
			}
		}
	}

	if err := g.AddEdges(chords); err != nil {
		return nil, fmt.Errorf("star: MaxDegree: %w", err)
	}

	return g, nil
}
