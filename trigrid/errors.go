package trigrid

import "errors"

var (
	// ErrNegativeOrder indicates a grid order n < 0.
	ErrNegativeOrder = errors.New("trigrid: order must be non-negative")
	// ErrUnknownCoordinate indicates a coordinate that is not a grid vertex.
	ErrUnknownCoordinate = errors.New("trigrid: unknown coordinate")
	// ErrUnknownVertex indicates a vertex code that is not a grid vertex.
	ErrUnknownVertex = errors.New("trigrid: unknown vertex code")
)
