package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a sweep configuration that cannot run.
	ErrInvalidConfig = errors.New("batch: invalid config")
	// ErrUnitPanic indicates a unit that panicked.
	ErrUnitPanic = errors.New("batch: unit panicked")
)

// UnitError is the failure of one unit.
type UnitError struct {
	Key Key
	Err error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("batch: unit (%d, %d): %v", e.Key.A, e.Key.B, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }
