package triage

import (
	"encoding/json"
	"strings"

	"issue-intelligence/internal/model"
)

// fibonacciPoints is the accepted story-point scale.
var fibonacciPoints = map[int]bool{1: true, 2: true, 3: true, 5: true, 8: true, 13: true, 21: true}

const (
	defaultConfidence      = 0.3
	defaultPriorityConf    = 0.5
	defaultPriorityReason  = "Default priority"
	unparseableReasoning   = "Model response could not be parsed; defaults applied"
	estimableMaxConfidence = 1.0
)

// defaultSuggestion is returned when the model response cannot be parsed.
func defaultSuggestion() TriageSuggestion {
	return TriageSuggestion{
		Type: model.IssueTypeTask,
		Priority: PrioritySuggestion{
			Value:      model.PriorityMedium,
			Confidence: defaultPriorityConf,
			Reasoning:  defaultPriorityReason,
		},
		Labels:     []LabelSuggestion{},
		Confidence: defaultConfidence,
		Reasoning:  unparseableReasoning,
	}
}

// parseSuggestion decodes and normalizes a raw model response. The ok
// return is false when the payload is not valid JSON at all.
func parseSuggestion(payload string, existingLabels []string) (TriageSuggestion, bool) {
	var raw rawSuggestion
	if err := json.Unmarshal([]byte(stripCodeFences(payload)), &raw); err != nil {
		return defaultSuggestion(), false
	}
	return normalizeSuggestion(raw, existingLabels), true
}

// normalizeSuggestion validates every field of the raw response and
// substitutes safe defaults for anything unknown.
func normalizeSuggestion(raw rawSuggestion, existingLabels []string) TriageSuggestion {
	out := TriageSuggestion{
		Summary:    raw.Summary,
		Confidence: clamp01(raw.Confidence),
		Reasoning:  raw.Reasoning,
		Labels:     []LabelSuggestion{},
	}

	out.Type = normalizeType(raw.Type)
	out.Priority = normalizePriority(raw.Priority.Value, raw.Priority.Confidence, raw.Priority.Reasoning)

	vocab := make(map[string]bool, len(existingLabels))
	for _, label := range existingLabels {
		vocab[strings.ToLower(label)] = true
	}
	for _, l := range raw.Labels {
		name := strings.ToLower(strings.TrimSpace(l.Name))
		if name == "" {
			continue
		}
		out.Labels = append(out.Labels, LabelSuggestion{
			Name:       name,
			IsExisting: vocab[name],
			Confidence: clamp01(l.Confidence),
		})
	}

	if raw.StoryPoints != nil {
		points := int(*raw.StoryPoints)
		if float64(points) == *raw.StoryPoints && fibonacciPoints[points] {
			out.StoryPoints = &points
		}
	}

	return out
}

func normalizeType(value string) model.IssueType {
	t := model.IssueType(strings.ToUpper(strings.TrimSpace(value)))
	if t.IsValid() {
		return t
	}
	return model.IssueTypeTask
}

func normalizePriority(value string, confidence float64, reasoning string) PrioritySuggestion {
	p := model.Priority(strings.ToLower(strings.TrimSpace(value)))
	if !p.IsValid() {
		return PrioritySuggestion{
			Value:      model.PriorityMedium,
			Confidence: defaultPriorityConf,
			Reasoning:  defaultPriorityReason,
		}
	}
	return PrioritySuggestion{
		Value:      p,
		Confidence: clamp01(confidence),
		Reasoning:  reasoning,
	}
}

// stripCodeFences removes a markdown code fence if the model wrapped its
// JSON in one despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
