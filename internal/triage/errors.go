package triage

import "errors"

// Domain-specific errors for the triage package.
var (
	ErrEmptyTitle = errors.New("issue title is empty")
)
