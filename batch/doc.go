// Package batch runs parameter sweeps of the coloring model on a bounded
// worker pool.
//
// Every parameter pair (a, b) is one unit of work: build a graph, build the
// model, solve it, extract the coloring. Units are independent; a unit that
// fails, times out or panics records its error under its Key and never
// cancels its siblings. The Report holds the nested results
// {a: {b: {vertex: color}}} next to the per-key errors.
//
// Sweeps:
//
//   - SweepKR: one graph, color budget k × order r.
//   - AntiprismSweep: order r × antiprism size n, fixed k.
//   - CirculantSweep: order r × circulant size n with fixed jumps, fixed k.
//   - StarSweep: for every grid order n, color every star graph of T_n and
//     collect the distinct color counts.
//
// Sweeps can be described in YAML and loaded with LoadConfig.
package batch
