package errors

import "errors"

// Domain errors
var (
	// Scan errors
	ErrUnreachable      = errors.New("target unreachable")
	ErrHeuristicFailure = errors.New("heuristic evaluation failed")
	ErrEmptyURL         = errors.New("url cannot be empty")

	// Request errors
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrUnknownCheck   = errors.New("unknown check")
)
