// Package: rdynamic/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates the list, resolves cfg, runs cons in order.
//   - Each constructor appends a disjoint component numbered after the vertices already present,
//     so composing constructors yields a disjoint union with dense codes 0..V-1.
//   - Determinism: same inputs/options and constructor order give identical lists.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rdynamic/adjacency"
)

// Constructor applies a deterministic topology to l. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Number new vertices from len(l) upward, in ascending order.
//   - Never add a self-loop or the same edge twice.
type Constructor func(l adjacency.List, cfg builderConfig) error

// BuildGraph creates an empty adjacency list, resolves the builder
// configuration from bopts and applies all constructors in order. Any
// constructor error is wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor plus O(V log V) when neighbor
// sorting is enabled.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (adjacency.List, error) {
	l := make(adjacency.List)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.sortNeighbors {
		for _, ns := range l {
			sort.Ints(ns)
		}
	}
	if cfg.validate {
		if err := adjacency.Validate(l); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
		}
	}

	return l, nil
}

// Build is BuildGraph with default options and a single constructor.
func Build(con Constructor) (adjacency.List, error) {
	return BuildGraph(nil, con)
}

// addVertices registers n fresh vertices after the current ones and returns
// the first new code.
func addVertices(l adjacency.List, n int) int {
	base := len(l)
	for i := 0; i < n; i++ {
		l.AddVertex(base + i)
	}

	return base
}
