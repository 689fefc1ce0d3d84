package llmprovider

import "context"

// Provider defines the interface for LLM completion providers.
type Provider interface {
	// Complete sends a completion request and returns a response
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "deepseek")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized completion request.
type Request struct {
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
	JSONResponse bool
}

// Message represents a conversation message.
type Message struct {
	Role string // "user" or "assistant"
	Text string
}

// Response represents a normalized completion response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
