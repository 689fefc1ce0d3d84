package triage

import "issue-intelligence/internal/model"

// AnalyzeInput is the input for full issue analysis.
type AnalyzeInput struct {
	Title            string
	Description      string
	ProjectContext   string
	WorkspaceContext string
	ExistingLabels   []string // label vocabulary of the workspace
}

// PrioritySuggestion is the priority dimension of a triage suggestion.
type PrioritySuggestion struct {
	Value      model.Priority `json:"value"`
	Confidence float64        `json:"confidence"`
	Reasoning  string         `json:"reasoning,omitempty"`
}

// LabelSuggestion is a single suggested label. IsExisting marks
// membership in the workspace label vocabulary.
type LabelSuggestion struct {
	Name       string  `json:"name"`
	IsExisting bool    `json:"is_existing"`
	Confidence float64 `json:"confidence"`
}

// TriageSuggestion is the structured result of issue analysis.
type TriageSuggestion struct {
	Type        model.IssueType    `json:"type"`
	Priority    PrioritySuggestion `json:"priority"`
	Labels      []LabelSuggestion  `json:"labels"`
	StoryPoints *int               `json:"story_points,omitempty"`
	Summary     string             `json:"summary,omitempty"`
	Confidence  float64            `json:"confidence"`
	Reasoning   string             `json:"reasoning,omitempty"`
}

// rawSuggestion mirrors the JSON shape requested from the model. All
// fields are loosely typed; validation happens in normalize.
type rawSuggestion struct {
	Type     string `json:"type"`
	Priority struct {
		Value      string  `json:"value"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	} `json:"priority"`
	Labels []struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	} `json:"labels"`
	StoryPoints *float64 `json:"story_points"`
	Summary     string   `json:"summary"`
	Confidence  float64  `json:"confidence"`
	Reasoning   string   `json:"reasoning"`
}
