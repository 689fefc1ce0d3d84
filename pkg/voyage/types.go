package voyage

const (
	DefaultBaseURL = "https://api.voyageai.com/v1"
	DefaultModel   = "voyage-3"
)

// EmbedRequest is the request body for the embeddings API.
type EmbedRequest struct {
	Input           []string `json:"input"`
	Model           string   `json:"model"`
	OutputDimension int      `json:"output_dimension,omitempty"`
}

// EmbedResponse is the response from the embeddings API.
type EmbedResponse struct {
	Object string          `json:"object"`
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  UsageInfo       `json:"usage"`
}

// EmbeddingData contains a single embedding vector.
type EmbeddingData struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// UsageInfo contains token usage statistics.
type UsageInfo struct {
	TotalTokens int `json:"total_tokens"`
}

// ErrorResponse is the error response from the Voyage API.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
