package duplicate

import "issue-intelligence/internal/model"

// MatchType classifies how strong a duplicate candidate is.
type MatchType string

const (
	MatchExactTitle     MatchType = "exact_title"
	MatchSimilarContent MatchType = "similar_content"
	MatchRelatedTopic   MatchType = "related_topic"
)

// Options tunes a duplicate search. Zero values take the defaults.
type Options struct {
	Threshold          float64 // minimum similarity, default 0.75
	MaxCandidates      int     // default 5
	IncludeExplanation bool    // generate explanations for the top candidates
}

// Candidate is a single likely duplicate.
type Candidate struct {
	Issue           model.Issue `json:"issue"`
	SimilarityScore float64     `json:"similarity_score"`
	MatchType       MatchType   `json:"match_type"`
	Explanation     string      `json:"explanation,omitempty"`
}

// FindOutput is the result of a duplicate search.
type FindOutput struct {
	Candidates       []Candidate `json:"candidates"`
	SearchedCount    int         `json:"searched_count"`
	ProcessingTimeMs int64       `json:"processing_time_ms"`
}

// CheckOutput is the result of the strict IsDuplicate check.
type CheckOutput struct {
	IsDuplicate bool       `json:"is_duplicate"`
	Confidence  float64    `json:"confidence"`
	Candidate   *Candidate `json:"candidate,omitempty"`
}
