package assignment

import (
	"issue-intelligence/pkg/log"
)

const defaultMaxSuggestions = 3

type service struct {
	l log.Logger
}

// New creates the assignment scoring Service.
func New(l log.Logger) Service {
	return &service{l: l}
}
