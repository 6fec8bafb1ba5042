package matching

import "errors"

var (
	// ErrInvalidRequest is returned when a match request cannot resolve a
	// senior location from either an identifier or explicit coordinates.
	ErrInvalidRequest = errors.New("senior location coordinates are required")

	// ErrSeniorNotFound is returned when a senior identifier matches no
	// record. It surfaces to callers wrapped in ErrInvalidRequest.
	ErrSeniorNotFound = errors.New("senior not found")
)
