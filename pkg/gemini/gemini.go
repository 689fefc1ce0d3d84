package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the Gemini Generative Language API client.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// New creates a new Gemini client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: &http.Client{},
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a content generation request to the Gemini API.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	apiReq := apiRequest{
		Contents: make([]apiContent, 0, len(req.Messages)),
	}

	if req.SystemInstruction != "" {
		apiReq.SystemInstruction = &apiContent{Parts: []apiPart{{Text: req.SystemInstruction}}}
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		apiReq.Contents = append(apiReq.Contents, apiContent{
			Role:  role,
			Parts: []apiPart{{Text: msg.Text}},
		})
	}

	genCfg := &apiGenerationConfig{MaxOutputTokens: req.MaxTokens}
	temp := req.Temperature
	genCfg.Temperature = &temp
	if req.JSONResponse {
		genCfg.ResponseMimeType = "application/json"
	}
	apiReq.GenerationConfig = genCfg

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var errResp apiError
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(raw))
	}

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	return &Response{
		Text: result.Candidates[0].Content.Parts[0].Text,
		Usage: Usage{
			InputTokens:  result.UsageMetadata.PromptTokenCount,
			OutputTokens: result.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  result.UsageMetadata.TotalTokenCount,
		},
	}, nil
}
