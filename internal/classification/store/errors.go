package store

import "errors"

// Sentinel errors returned by the record access layer. Callers match them
// with errors.Is.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey indicates an insert collided with an existing
	// primary key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidArgument indicates the operation was rejected before any
	// database I/O because its input shape is invalid.
	ErrInvalidArgument = errors.New("invalid argument")
)
