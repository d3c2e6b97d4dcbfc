package coloring

import (
	"fmt"
	"strings"
)

// Method selects a model variant.
type Method string

const (
	// ACR links edges to used colors and packs used colors to the front.
	ACR Method = "ACR"
	// ACRH uses plain proper-coloring edge constraints.
	ACRH Method = "ACR-H"
	// ACRR is ACR with warm start.
	ACRR Method = "ACR-R"
	// ACRRH is ACR-H with warm start.
	ACRRH Method = "ACR-RH"
)

// Methods lists every variant.
var Methods = []Method{ACR, ACRH, ACRR, ACRRH}

// ParseMethod accepts the canonical names and their underscore spellings
// (ACR_H, ACR_R, ACR_RH).
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if !m.Valid() {
		return "", fmt.Errorf("coloring: %q: %w", s, ErrUnknownMethod)
	}

	return m, nil
}

// Valid reports whether m is a known variant.
func (m Method) Valid() bool {
	switch m {
	case ACR, ACRH, ACRR, ACRRH:
		return true
	}

	return false
}

// Hard reports whether edge constraints use the constant bound 1.
func (m Method) Hard() bool { return m == ACRH || m == ACRRH }

// Incremental reports whether the variant accepts a warm start.
func (m Method) Incremental() bool { return m == ACRR || m == ACRRH }

// String returns the canonical name.
func (m Method) String() string { return string(m) }
