package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPersistence wraps storage write failures. Callers must treat a
	// failed write as "state unknown" and re-fetch before retrying.
	ErrPersistence = errors.New("persistence failure")
)
