package gateway

import "errors"

var (
	// ErrNoLabels means Classify was called with an empty candidate set.
	ErrNoLabels = errors.New("no candidate labels provided")

	// ErrUnknownLabel means the model answered outside the candidate set.
	ErrUnknownLabel = errors.New("classification result not in candidate labels")

	// ErrEmbedderUnavailable means no embedding client was configured.
	ErrEmbedderUnavailable = errors.New("embedding client is not configured")
)
