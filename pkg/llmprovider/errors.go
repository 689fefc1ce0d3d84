package llmprovider

import "errors"

var (
	// ErrNoProvidersConfigured means no enabled providers were available.
	ErrNoProvidersConfigured = errors.New("no LLM providers configured")

	// ErrAllProvidersFailed means every provider in the fallback chain failed.
	ErrAllProvidersFailed = errors.New("all LLM providers failed")
)
