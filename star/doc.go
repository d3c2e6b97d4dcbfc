// Package star enumerates the "star graphs" of a triangular grid: every
// triangulation reachable from the grid's border by repeated triad
// contraction.
//
// A contraction picks three consecutive border vertices (prev, middle, next)
// whose outer two are not yet adjacent, joins them with a chord and drops
// middle from the border. The search stops on a state once its border is a
// triangle; that state is materialized into a trigrid.Grid and recorded.
//
// Enumeration:
//
//   - Generator.Generate explores the full reachable set with a
//     search.Queue (Priority by default, Stack on request).
//   - WithMaxGraphs bounds the number of recorded graphs; the remaining queue
//     is abandoned and Result.Truncated is set.
//   - WithDistinct (default on) drops completed graphs with an edge set that
//     was already recorded and never expands the same
//     (adjacency, border, target) configuration twice.
//   - MaxDegree builds the single fixed-chord family with one high-degree hub.
//
// Diagnostics:
//
//   - Result.QueueSizes records the queue length after every pop.
//   - Diagnose counts completed graphs with repeated edges.
//
// Errors:
//
//   - ErrNilGrid: New was given a nil base grid.
//   - ErrOrderTooSmall: MaxDegree with n < 2.
package star
