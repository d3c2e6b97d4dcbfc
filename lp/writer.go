package lp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteLP renders m in CPLEX LP format:
//
//	\* name *\
//	Minimize
//	OBJ: w_0 + w_1
//	Subject To
//	C1_0: x_0_0 + x_0_1 = 1
//	Binaries
//	w_0
//	End
func WriteLP(w io.Writer, m *Model) error {
	if m == nil {
		return ErrNilModel
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\\* %s *\\\n", m.Name)
	fmt.Fprintf(bw, "Minimize\nOBJ: %s\n", formatExpr(m, m.objective.Terms))
	bw.WriteString("Subject To\n")
	for i, c := range m.constraints {
		label := c.Label
		if label == "" {
			label = "_C" + strconv.Itoa(i+1)
		}
		fmt.Fprintf(bw, "%s: %s %s %s\n", label, formatExpr(m, c.Expr.Terms), c.Sense, formatNumber(c.RHS))
	}
	if len(m.names) > 0 {
		bw.WriteString("Binaries\n")
		for _, name := range m.names {
			bw.WriteString(name)
			bw.WriteByte('\n')
		}
	}
	bw.WriteString("End\n")

	return bw.Flush()
}

func formatExpr(m *Model, terms []Term) string {
	if len(terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range terms {
		coef := t.Coef
		switch {
		case i == 0 && coef < 0:
			sb.WriteString("- ")
			coef = -coef
		case i > 0 && coef < 0:
			sb.WriteString(" - ")
			coef = -coef
		case i > 0:
			sb.WriteString(" + ")
		}
		if coef != 1 {
			sb.WriteString(formatNumber(coef))
			sb.WriteByte(' ')
		}
		sb.WriteString(m.VarName(t.Var))
	}

	return sb.String()
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', 12, 64)
}
