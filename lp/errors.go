package lp

import "errors"

var (
	// ErrUnknownVar indicates a variable that does not belong to the model.
	ErrUnknownVar = errors.New("lp: unknown variable")
	// ErrNilModel indicates a nil model.
	ErrNilModel = errors.New("lp: nil model")
)
