package lp

import (
	"context"
	"fmt"
)

// Var is the index of a binary variable inside its Model.
type Var int

// Term is coef·var.
type Term struct {
	Var  Var
	Coef float64
}

// Expr is a linear expression Σ terms + Const.
type Expr struct {
	Terms []Term
	Const float64
}

// Sum returns the expression v₁ + v₂ + … .
func Sum(vars ...Var) Expr {
	e := Expr{Terms: make([]Term, len(vars))}
	for i, v := range vars {
		e.Terms[i] = Term{Var: v, Coef: 1}
	}

	return e
}

// Plus returns e + coef·v.
func (e Expr) Plus(coef float64, v Var) Expr {
	out := Expr{Terms: make([]Term, len(e.Terms), len(e.Terms)+1), Const: e.Const}
	copy(out.Terms, e.Terms)
	out.Terms = append(out.Terms, Term{Var: v, Coef: coef})

	return out
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	out := Expr{Terms: make([]Term, 0, len(e.Terms)+len(o.Terms)), Const: e.Const + o.Const}
	out.Terms = append(out.Terms, e.Terms...)
	out.Terms = append(out.Terms, o.Terms...)

	return out
}

// Minus returns e - v.
func (e Expr) Minus(v Var) Expr { return e.Plus(-1, v) }

// Sense is the relation of a constraint.
type Sense int

const (
	// LE is Σ ≤ rhs.
	LE Sense = iota
	// GE is Σ ≥ rhs.
	GE
	// EQ is Σ = rhs.
	EQ
)

// String returns the LP-format operator.
func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Constraint is label: expr sense rhs. Expr.Const is always zero once the
// constraint is part of a Model.
type Constraint struct {
	Label string
	Expr  Expr
	Sense Sense
	RHS   float64
}

// Status is the outcome of a solve.
type Status int

const (
	// NotSolved means the search stopped before proving anything.
	NotSolved Status = iota
	// Optimal means the returned values are a proven optimum.
	Optimal
	// Infeasible means no assignment satisfies the constraints.
	Infeasible
	// Unbounded means the objective has no finite optimum.
	Unbounded
	// Undefined means the backend could not classify the model.
	Undefined
)

// String returns the conventional status name.
func (s Status) String() string {
	switch s {
	case NotSolved:
		return "Not Solved"
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	case Undefined:
		return "Undefined"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Solution holds solver output. Values is indexed by Var and is present for
// Optimal results and, when an incumbent exists, for NotSolved ones.
type Solution struct {
	Status    Status
	Values    []float64
	Objective float64
}

// Value returns the value of v, or 0 when no value is available.
func (s *Solution) Value(v Var) float64 {
	if s == nil || int(v) < 0 || int(v) >= len(s.Values) {
		return 0
	}

	return s.Values[v]
}

// Solver solves a model.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, m *Model) (*Solution, error)

// Solve calls f(ctx, m).
func (f SolverFunc) Solve(ctx context.Context, m *Model) (*Solution, error) { return f(ctx, m) }
