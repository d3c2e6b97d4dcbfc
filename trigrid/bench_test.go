package trigrid_test

import (
	"testing"

	"github.com/katalvlaran/rdynamic/trigrid"
)

// BenchmarkNew measures construction of T_60 (1891 vertices).
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := trigrid.New(60); err != nil {
			b.Fatal(err)
		}
	}
}
