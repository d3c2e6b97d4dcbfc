package lp

import "fmt"

// Model is a minimization problem over binary variables.
type Model struct {
	Name string

	names       []string
	index       map[string]Var
	constraints []Constraint
	objective   Expr
}

// NewModel returns an empty model.
func NewModel(name string) *Model {
	return &Model{Name: name, index: make(map[string]Var)}
}

// Binary declares a binary variable. Declaring an existing name returns the
// existing variable.
func (m *Model) Binary(name string) Var {
	if v, ok := m.index[name]; ok {
		return v
	}
	v := Var(len(m.names))
	m.names = append(m.names, name)
	m.index[name] = v

	return v
}

// Lookup returns the variable declared under name.
func (m *Model) Lookup(name string) (Var, bool) {
	v, ok := m.index[name]

	return v, ok
}

// VarName returns the declared name of v.
func (m *Model) VarName(v Var) string {
	if int(v) < 0 || int(v) >= len(m.names) {
		return fmt.Sprintf("?%d", int(v))
	}

	return m.names[v]
}

// NumVars returns the number of declared variables.
func (m *Model) NumVars() int { return len(m.names) }

// AddConstraint appends label: expr sense rhs. The constant of expr moves to
// the right-hand side.
func (m *Model) AddConstraint(label string, expr Expr, sense Sense, rhs float64) error {
	if err := m.check(expr); err != nil {
		return fmt.Errorf("lp: constraint %q: %w", label, err)
	}
	terms := append([]Term(nil), expr.Terms...)
	m.constraints = append(m.constraints, Constraint{
		Label: label,
		Expr:  Expr{Terms: terms},
		Sense: sense,
		RHS:   rhs - expr.Const,
	})

	return nil
}

// Minimize sets the objective.
func (m *Model) Minimize(expr Expr) error {
	if err := m.check(expr); err != nil {
		return fmt.Errorf("lp: objective: %w", err)
	}
	m.objective = Expr{Terms: append([]Term(nil), expr.Terms...), Const: expr.Const}

	return nil
}

// Constraints returns the constraint list.
func (m *Model) Constraints() []Constraint {
	return append([]Constraint(nil), m.constraints...)
}

// Objective returns the objective expression.
func (m *Model) Objective() Expr { return m.objective }

// Eval returns the value of expr under values (missing entries are 0).
func Eval(expr Expr, values []float64) float64 {
	sum := expr.Const
	for _, t := range expr.Terms {
		if int(t.Var) < len(values) {
			sum += t.Coef * values[t.Var]
		}
	}

	return sum
}

// Satisfied reports whether c holds under values within tolerance eps.
func (c Constraint) Satisfied(values []float64, eps float64) bool {
	lhs := Eval(c.Expr, values)
	switch c.Sense {
	case LE:
		return lhs <= c.RHS+eps
	case GE:
		return lhs >= c.RHS-eps
	default:
		return lhs >= c.RHS-eps && lhs <= c.RHS+eps
	}
}

func (m *Model) check(expr Expr) error {
	for _, t := range expr.Terms {
		if int(t.Var) < 0 || int(t.Var) >= len(m.names) {
			return fmt.Errorf("var %d: %w", int(t.Var), ErrUnknownVar)
		}
	}

	return nil
}
