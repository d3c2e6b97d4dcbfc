package star

import (
	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/trigrid"
)

// Diagnostics summarizes repeated-edge defects over a set of graphs.
type Diagnostics struct {
	Graphs            int
	WithRepeatedEdges int
	RepeatedEdges     int
}

// Diagnose runs the repeated-edge check on every graph. A generator that
// only adds chords between non-adjacent vertices yields zero counts.
func Diagnose(graphs []*trigrid.Grid) Diagnostics {
	d := Diagnostics{Graphs: len(graphs)}
	for _, g := range graphs {
		adj := g.Adjacency()
		if adjacency.HasRepeatedEdges(adj) {
			d.WithRepeatedEdges++
			d.RepeatedEdges += adjacency.RepeatedEdgeCount(adj)
		}
	}

	return d
}
