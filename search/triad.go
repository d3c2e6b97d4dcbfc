package search

import "fmt"

// Triad is an ordered triple of cyclically consecutive border vertices.
type Triad struct {
	Prev, Middle, Next int
}

// String renders the triad as "(prev, middle, next)".
func (t Triad) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.Prev, t.Middle, t.Next)
}

// TriadAt returns the triad centred on border[i], wrapping around both ends.
// i is taken modulo len(border); border must not be empty.
func TriadAt(border []int, i int) Triad {
	n := len(border)
	i = ((i % n) + n) % n

	return Triad{
		Prev:   border[(i-1+n)%n],
		Middle: border[i],
		Next:   border[(i+1)%n],
	}
}

// Triads returns every cyclic triad of border, indexed by its middle
// position. Borders shorter than 3 have no triads.
func Triads(border []int) []Triad {
	if len(border) < 3 {
		return nil
	}
	out := make([]Triad, len(border))
	for i := range border {
		out[i] = TriadAt(border, i)
	}

	return out
}
