package search

import "errors"

var (
	// ErrEmptyQueue indicates Pop or Peek on a queue without states.
	ErrEmptyQueue = errors.New("search: queue is empty")
	// ErrUnknownStrategy indicates an unsupported queue strategy.
	ErrUnknownStrategy = errors.New("search: unknown queue strategy")
	// ErrTargetOutOfRange indicates a TargetIndex outside the current border.
	ErrTargetOutOfRange = errors.New("search: target index out of range")
)
