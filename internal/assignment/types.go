package assignment

// Options tunes an assignment suggestion run. Zero values take the
// defaults: three suggestions, workload considered.
type Options struct {
	MaxSuggestions int
	IgnoreWorkload bool
}

// Suggestion is one ranked assignee candidate.
type Suggestion struct {
	UserID     string   `json:"user_id"`
	UserName   string   `json:"user_name"`
	Score      float64  `json:"score"`
	Reasons    []string `json:"reasons"`
	Confidence float64  `json:"confidence"`
}

// SuggestOutput is the ranked suggestion list plus a natural-language
// summary of the top pick and its alternatives.
type SuggestOutput struct {
	Suggestions []Suggestion `json:"suggestions"`
	Reasoning   string       `json:"reasoning"`
}

// MemberWorkload is one member's aggregated issue counts.
type MemberWorkload struct {
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	Total         int     `json:"total"`
	InProgress    int     `json:"in_progress"`
	Blocked       int     `json:"blocked"`
	CapacityScore float64 `json:"capacity_score"`
}

// WorkloadAnalysis is the per-member aggregation across a team.
type WorkloadAnalysis struct {
	Members []MemberWorkload `json:"members"`
}

// BalanceReport describes how evenly in-progress work is distributed.
type BalanceReport struct {
	IsBalanced     bool     `json:"is_balanced"`
	ImbalanceScore float64  `json:"imbalance_score"`
	Overloaded     []string `json:"overloaded,omitempty"`
	Underloaded    []string `json:"underloaded,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}
