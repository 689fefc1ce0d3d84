package gateway

// CompleteInput is a single-turn completion request.
type CompleteInput struct {
	SystemPrompt string
	Prompt       string
	Temperature  float64
	MaxTokens    int
	JSONResponse bool // request a JSON-typed response body from the provider
}
