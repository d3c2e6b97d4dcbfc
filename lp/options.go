package lp

import (
	"fmt"
	"time"
)

// Option configures BranchAndBound.
type Option func(*BranchAndBound)

// WithTimeLimit bounds the wall time of one Solve. Zero disables the limit.
// Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("lp: WithTimeLimit(%v): must be non-negative", d))
	}
	return func(b *BranchAndBound) { b.timeLimit = d }
}

// WithNodeLimit bounds the number of explored nodes. Zero disables the limit.
// Panics if n < 0.
func WithNodeLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("lp: WithNodeLimit(%d): must be non-negative", n))
	}
	return func(b *BranchAndBound) { b.nodeLimit = n }
}
