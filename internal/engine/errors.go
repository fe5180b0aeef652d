package engine

import "errors"

var (
	// ErrDiscovery indicates the root path is missing or not a directory.
	ErrDiscovery = errors.New("discovery failed")

	// ErrInvalidConfig indicates options that cannot produce a valid plan.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDestinationConflict indicates a target folder path holds a non-directory.
	ErrDestinationConflict = errors.New("destination conflict")

	// ErrDestinationExists indicates a move was blocked by an existing file.
	ErrDestinationExists = errors.New("destination exists")

	// ErrMoveFailed indicates both rename and the copy fallback failed.
	ErrMoveFailed = errors.New("move failed")

	// ErrMovesFailed is returned by Run when at least one action failed.
	ErrMovesFailed = errors.New("one or more moves failed")
)
