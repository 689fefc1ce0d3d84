package deepseek

// Config configures the DeepSeek client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Message is a single conversation turn.
type Message struct {
	Role string // "system", "user", "assistant"
	Text string
}

// Request is a normalized generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	JSONResponse      bool
}

// Response is a normalized generation response.
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire types for the OpenAI-compatible chat completions endpoint.

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponseFormat struct {
	Type string `json:"type"`
}

type apiRequest struct {
	Model          string             `json:"model"`
	Messages       []apiMessage       `json:"messages"`
	Temperature    float64            `json:"temperature"`
	MaxTokens      int                `json:"max_tokens,omitempty"`
	ResponseFormat *apiResponseFormat `json:"response_format,omitempty"`
}

type apiResponse struct {
	Choices []struct {
		Message apiMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
