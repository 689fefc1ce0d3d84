package gemini

import "context"

// IGemini is the capability surface consumed by the provider adapter.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
