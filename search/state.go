package search

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/adjacency"
)

// State is one node of the contraction search.
//
// Invariants:
//   - Border is a simple cycle over vertices of Adjacency.
//   - Border and ClipHistory are disjoint; together they hold every vertex
//     that was on the initial border.
//   - TargetIndex selects the triad to contract when the state is expanded.
type State struct {
	Adjacency   adjacency.List
	Border      []int
	TargetIndex int
	ClipHistory []int
}

// Clone returns a deep copy of s; nil stays nil.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := &State{
		Adjacency:   s.Adjacency.Clone(),
		Border:      append([]int(nil), s.Border...),
		TargetIndex: s.TargetIndex,
		ClipHistory: append([]int(nil), s.ClipHistory...),
	}
	if out.Border == nil {
		out.Border = []int{}
	}
	if out.ClipHistory == nil {
		out.ClipHistory = []int{}
	}

	return out
}

// Triad recomputes the target triad from the current border.
func (s *State) Triad() (Triad, error) {
	if s.TargetIndex < 0 || s.TargetIndex >= len(s.Border) {
		return Triad{}, fmt.Errorf("search: index %d, border length %d: %w",
			s.TargetIndex, len(s.Border), ErrTargetOutOfRange)
	}

	return TriadAt(s.Border, s.TargetIndex), nil
}
