package repository

import "errors"

var (
	// ErrNotFound is returned when an operation references an id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique-key violations and duplicate joins.
	ErrConflict = errors.New("conflict")
	// ErrCapacityExceeded is returned when joining a full group session.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrValidation is returned for input the store refuses to hold.
	ErrValidation = errors.New("validation error")
)
