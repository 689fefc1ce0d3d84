package duplicate

import "errors"

// Domain-specific errors for the duplicate package.
var (
	ErrEmptyTitle = errors.New("issue title is empty")

	// ErrDimensionMismatch is a programming-contract violation: vectors
	// of different lengths must never be compared silently.
	ErrDimensionMismatch = errors.New("embedding vectors have different dimensions")
)
