package triage

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"issue-intelligence/internal/gateway"
	"issue-intelligence/internal/model"
)

const (
	analyzeTemperature = 0.2
	analyzeMaxTokens   = 1024
)

// estimableTypes are the issue types that get story-point estimates.
var estimableTypes = map[model.IssueType]bool{
	model.IssueTypeStory:   true,
	model.IssueTypeTask:    true,
	model.IssueTypeBug:     true,
	model.IssueTypeSubtask: true,
}

// AnalyzeIssue runs the full classification round trip. Any provider or
// parse failure degrades to the default suggestion with a nil error.
func (s *service) AnalyzeIssue(ctx context.Context, input AnalyzeInput) (TriageSuggestion, error) {
	if strings.TrimSpace(input.Title) == "" {
		return TriageSuggestion{}, ErrEmptyTitle
	}

	system, user := buildAnalyzePrompt(input)

	payload, err := s.gw.Complete(ctx, gateway.CompleteInput{
		SystemPrompt: system,
		Prompt:       user,
		Temperature:  analyzeTemperature,
		MaxTokens:    analyzeMaxTokens,
		JSONResponse: true,
	})
	if err != nil {
		s.l.Warnf(ctx, "AnalyzeIssue: completion failed, using default suggestion: %v", err)
		return defaultSuggestion(), nil
	}

	suggestion, ok := parseSuggestion(payload, input.ExistingLabels)
	if !ok {
		s.l.Warnf(ctx, "AnalyzeIssue: unparseable model response, using default suggestion")
	}
	return suggestion, nil
}

// ClassifyType classifies only the issue type.
func (s *service) ClassifyType(ctx context.Context, title, description string) (model.IssueType, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrEmptyTitle
	}

	labels := make([]string, len(model.IssueTypes))
	for i, t := range model.IssueTypes {
		labels[i] = string(t)
	}

	text := title
	if description != "" {
		text += "\n\n" + description
	}

	answer, err := s.gw.Classify(ctx, text, labels, "issue type in a project management tool")
	if err != nil {
		return "", err
	}
	return model.IssueType(answer), nil
}

// AssessPriority assesses only the priority dimension.
func (s *service) AssessPriority(ctx context.Context, title, description string) (PrioritySuggestion, error) {
	if strings.TrimSpace(title) == "" {
		return PrioritySuggestion{}, ErrEmptyTitle
	}

	system, user := buildPriorityPrompt(title, description)
	payload, err := s.gw.Complete(ctx, gateway.CompleteInput{
		SystemPrompt: system,
		Prompt:       user,
		Temperature:  analyzeTemperature,
		MaxTokens:    256,
		JSONResponse: true,
	})
	if err != nil {
		return PrioritySuggestion{}, err
	}

	var raw struct {
		Value      string  `json:"value"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(payload)), &raw); err != nil {
		return normalizePriority("", 0, ""), nil
	}
	return normalizePriority(raw.Value, raw.Confidence, raw.Reasoning), nil
}

// SuggestLabels suggests labels only.
func (s *service) SuggestLabels(ctx context.Context, title, description string, existingLabels []string) ([]LabelSuggestion, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	system, user := buildLabelsPrompt(title, description, existingLabels)
	payload, err := s.gw.Complete(ctx, gateway.CompleteInput{
		SystemPrompt: system,
		Prompt:       user,
		Temperature:  analyzeTemperature,
		MaxTokens:    256,
		JSONResponse: true,
	})
	if err != nil {
		return nil, err
	}

	var raw struct {
		Labels []struct {
			Name       string  `json:"name"`
			Confidence float64 `json:"confidence"`
		} `json:"labels"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(payload)), &raw); err != nil {
		return []LabelSuggestion{}, nil
	}

	vocab := make(map[string]bool, len(existingLabels))
	for _, label := range existingLabels {
		vocab[strings.ToLower(label)] = true
	}

	out := make([]LabelSuggestion, 0, len(raw.Labels))
	for _, l := range raw.Labels {
		name := strings.ToLower(strings.TrimSpace(l.Name))
		if name == "" {
			continue
		}
		out = append(out, LabelSuggestion{
			Name:       name,
			IsExisting: vocab[name],
			Confidence: clamp01(l.Confidence),
		})
	}
	return out, nil
}

// EstimateStoryPoints estimates story points for estimable types only.
// Non-estimable types return nil without a model call.
func (s *service) EstimateStoryPoints(ctx context.Context, title, description string, issueType model.IssueType) (*int, error) {
	if !estimableTypes[issueType] {
		return nil, nil
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	system, user := buildStoryPointsPrompt(title, description)
	payload, err := s.gw.Complete(ctx, gateway.CompleteInput{
		SystemPrompt: system,
		Prompt:       user,
		Temperature:  0,
		MaxTokens:    8,
	})
	if err != nil {
		return nil, err
	}

	value, err := strconv.Atoi(strings.TrimSpace(payload))
	if err != nil {
		s.l.Warnf(ctx, "EstimateStoryPoints: non-numeric answer %q", payload)
		return nil, nil
	}

	points := snapToFibonacci(value)
	return &points, nil
}

// snapToFibonacci maps an estimate onto the nearest accepted scale value.
func snapToFibonacci(value int) int {
	scale := []int{1, 2, 3, 5, 8, 13, 21}
	best := scale[0]
	for _, p := range scale {
		if abs(value-p) < abs(value-best) {
			best = p
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
