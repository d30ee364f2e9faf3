package cursor

import "errors"

var (
	// ErrEmptyContainer reports an operation against a zero-length sequence.
	ErrEmptyContainer = errors.New("empty container")
	// ErrOutOfRange reports a cursor index with no element behind it.
	ErrOutOfRange = errors.New("cursor out of range")
	// ErrMaxOut reports a bounded forward move refused at the last element.
	ErrMaxOut = errors.New("cursor at last element")
	// ErrMinOut reports a bounded backward move refused at the first element.
	ErrMinOut = errors.New("cursor at first element")
)
