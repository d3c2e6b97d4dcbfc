// Package lp models small 0/1 integer programs and solves them.
//
// What:
//
//   - Model: named binary variables, linear constraints (≤, ≥, =) and a
//     linear objective to minimize.
//   - Solver: the contract Solve(ctx, model) → Solution. Any external MIP
//     backend can be plugged in through SolverFunc.
//   - BranchAndBound: a built-in exact solver for pure binary models.
//   - WriteLP: renders a model in CPLEX LP text format for external solvers.
//
// Status names follow the common MIP-modeler convention:
// "Not Solved", "Optimal", "Infeasible", "Unbounded", "Undefined".
//
// Branch-and-bound outline:
//
//  1. Rows are normalized once: constants move to the right-hand side and
//     repeated variables are merged.
//  2. Each node runs bound propagation to a fixpoint: row activity bounds
//     either prove infeasibility or force free variables.
//  3. Objective lower bound = fixed cost + Σ min(c_j, 0) over free j; prune
//     whenever it cannot beat the incumbent.
//  4. Branch on the first free variable in declaration order; try 0 first
//     for positive cost, 1 first otherwise.
//  5. Sparse deadline and context checks (every 1024 nodes).
//
// Errors:
//
//   - ErrUnknownVar: a constraint or objective references a foreign variable.
//   - ErrNilModel: Solve or WriteLP with a nil model.
package lp
