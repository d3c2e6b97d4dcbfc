package coloring

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod indicates a method name that is not a model variant.
	ErrUnknownMethod = errors.New("coloring: unknown method")
	// ErrInvalidParams indicates out-of-range numeric parameters.
	ErrInvalidParams = errors.New("coloring: invalid parameters")
	// ErrInvalidGraph indicates an adjacency list that is not a simple
	// undirected graph.
	ErrInvalidGraph = errors.New("coloring: invalid graph")
	// ErrWarmStartMismatch indicates a previous solution over vertices or
	// colors the new model does not have.
	ErrWarmStartMismatch = errors.New("coloring: warm start does not match graph")
	// ErrNotOptimal indicates a solve that did not prove optimality.
	ErrNotOptimal = errors.New("coloring: solution is not optimal")
)

// ParamError describes one rejected parameter.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("coloring: %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidParams.
func (e *ParamError) Unwrap() error { return ErrInvalidParams }
