// Package: rdynamic/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, iterations) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a topology could not be constructed
// without breaking the simple-graph invariants, or a nil constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")
