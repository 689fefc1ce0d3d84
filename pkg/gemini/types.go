package gemini

// Config configures the Gemini client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Message is a single conversation turn.
type Message struct {
	Role string // "user" or "model"
	Text string
}

// Request is a normalized generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	JSONResponse      bool // ask the API for a JSON-typed response body
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

// Wire types for the generateContent endpoint.

type apiPart struct {
	Text string `json:"text,omitempty"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiGenerationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int      `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

type apiRequest struct {
	SystemInstruction *apiContent          `json:"systemInstruction,omitempty"`
	Contents          []apiContent         `json:"contents"`
	GenerationConfig  *apiGenerationConfig `json:"generationConfig,omitempty"`
}

type apiResponse struct {
	Candidates []struct {
		Content apiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
