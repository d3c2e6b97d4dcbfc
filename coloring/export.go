package coloring

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Family selects one variable family for export.
type Family string

const (
	FamilyW Family = "w"
	FamilyX Family = "x"
	FamilyQ Family = "q"
)

// WriteCSV writes the values of one family without header or index: one row
// per vertex for x and q, a single row for w.
func WriteCSV(w io.Writer, sol *Solution, family Family) error {
	var rows [][]float64
	switch family {
	case FamilyW:
		rows = [][]float64{sol.W}
	case FamilyX:
		rows = sol.X
	case FamilyQ:
		rows = sol.Q
	default:
		return fmt.Errorf("coloring: unknown family %q", string(family))
	}

	cw := csv.NewWriter(w)
	for _, row := range rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = strconv.FormatFloat(v, 'f', 1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("coloring: write %s: %w", family, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
