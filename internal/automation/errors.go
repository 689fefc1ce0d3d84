package automation

import "errors"

// Domain-specific errors for the automation package.
var (
	// ErrMissingIssue marks an issue-triggered action invoked on an
	// event without an issue snapshot. It is an input error, recorded as
	// that rule's failure.
	ErrMissingIssue = errors.New("event payload has no issue")

	// ErrUnknownAction marks a rule whose action type has no registered
	// executor.
	ErrUnknownAction = errors.New("unknown action type")

	// ErrMissingConfig marks an executor invoked without the action
	// config it requires.
	ErrMissingConfig = errors.New("action config is missing a required field")
)
