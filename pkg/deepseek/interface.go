package deepseek

import "context"

// IDeepSeek is the capability surface consumed by the provider adapter.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
