package star

import "errors"

var (
	// ErrNilGrid indicates a generator without a base grid.
	ErrNilGrid = errors.New("star: base grid is nil")
	// ErrOrderTooSmall indicates MaxDegree on a grid with n < 2.
	ErrOrderTooSmall = errors.New("star: grid order too small")
)
