package gateway

import (
	"context"

	"issue-intelligence/pkg/llmprovider"
	"issue-intelligence/pkg/log"
	"issue-intelligence/pkg/voyage"
)

// Completer is the completion surface of the provider manager.
type Completer interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type impl struct {
	completer Completer
	embedder  voyage.IVoyage
	l         log.Logger
}

var _ ModelGateway = (*impl)(nil)

// New creates a ModelGateway over the provider manager and the embedding
// client. The embedder may be nil; Embed then fails with
// ErrEmbedderUnavailable.
func New(l log.Logger, completer Completer, embedder voyage.IVoyage) ModelGateway {
	return &impl{
		completer: completer,
		embedder:  embedder,
		l:         l,
	}
}
