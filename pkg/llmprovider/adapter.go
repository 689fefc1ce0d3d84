package llmprovider

import (
	"context"

	"issue-intelligence/pkg/deepseek"
	"issue-intelligence/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter.
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Complete implements Provider.
func (a *GeminiAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: req.SystemPrompt,
		Messages:          toGeminiMessages(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONResponse:      req.JSONResponse,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name.
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns the model name.
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// DeepSeekAdapter adapts pkg/deepseek to the Provider interface.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter.
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// Complete implements Provider.
func (a *DeepSeekAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		SystemInstruction: req.SystemPrompt,
		Messages:          toDeepSeekMessages(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONResponse:      req.JSONResponse,
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "deepseek",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name.
func (a *DeepSeekAdapter) Name() string { return "deepseek" }

// Model returns the model name.
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

func toGeminiMessages(msgs []Message) []gemini.Message {
	out := make([]gemini.Message, len(msgs))
	for i, m := range msgs {
		out[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}
	return out
}

func toDeepSeekMessages(msgs []Message) []deepseek.Message {
	out := make([]deepseek.Message, len(msgs))
	for i, m := range msgs {
		out[i] = deepseek.Message{Role: m.Role, Text: m.Text}
	}
	return out
}
