package adjacency

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// textGraph is the grammar root of the adjacency text format:
//
//	# triangle
//	0: 1 2
//	1: 0, 2; 2: 0 1
//
// Lines (or ';'-separated entries) declare one vertex and its neighbors.
type textGraph struct {
	Entries []*textEntry `parser:"Sep* ( @@ Sep* )*"`
}

type textEntry struct {
	Vertex    int   `parser:"@Int ':'"`
	Neighbors []int `parser:"( @Int ','? )*"`
}

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[:,]`},
	{Name: "Sep", Pattern: `[;\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var textParser = participle.MustBuild[textGraph](
	participle.Lexer(textLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ParseText parses the adjacency text format into a List. Neighbors are kept
// exactly as written: ParseText neither symmetrizes nor deduplicates, so the
// result can be checked with Validate and HasRepeatedEdges. Vertices that only
// appear as neighbors are not added.
func ParseText(s string) (List, error) {
	g, err := textParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("adjacency: parse text: %w", err)
	}
	out := make(List, len(g.Entries))
	for _, e := range g.Entries {
		if _, dup := out[e.Vertex]; dup {
			return nil, fmt.Errorf("adjacency: parse text: vertex %d: %w", e.Vertex, ErrDuplicateVertex)
		}
		ns := make([]int, len(e.Neighbors))
		copy(ns, e.Neighbors)
		out[e.Vertex] = ns
	}

	return out, nil
}

// FormatText renders l in the text format, one vertex per line in ascending
// order, neighbors in stored order.
func FormatText(l List) string {
	var b strings.Builder
	for _, v := range l.Vertices() {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(':')
		for _, u := range l[v] {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(u))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
