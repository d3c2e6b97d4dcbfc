// Package rdynamic builds and colors star graphs of triangular grids.
//
// 🚀 What is rdynamic?
//
//	A research toolkit for r-dynamic vertex coloring, bringing together:
//		• Triangular grids T_n with stable vertex codes and an outer border cycle
//		• Star graph enumeration by border contraction (priority or stack order)
//		• A 0/1 model of r-dynamic coloring in four variants (ACR, ACR-H, ACR-R, ACR-RH)
//		• A branch-and-bound solver and a CPLEX LP writer for external solvers
//		• Parameter sweeps on a bounded worker pool, described in YAML
//
// Under the hood, everything is organized in subpackages:
//
//	adjacency/ adjacency lists, matrices, text format, fingerprints
//	builder/   cycles, complete graphs, wheels, circulants, antiprisms
//	trigrid/   the triangular grid T_n and its border
//	search/    triads, search states and the expansion queue
//	star/      star graph enumeration and diagnostics
//	lp/        binary linear models, LP export, branch and bound
//	coloring/  model builder, solving, checks, warm-start chains
//	batch/     worker pool, sweeps, YAML configs
//	metrics/   Prometheus instruments
//
// Quick ASCII example, T_2 with its vertex codes:
//
//	3
//	│ ╲
//	1───4
//	│ ╲ │ ╲
//	0───2───5
//
// Its border visits 0 2 5 4 3 1.
//
//	go get github.com/katalvlaran/rdynamic
package rdynamic
