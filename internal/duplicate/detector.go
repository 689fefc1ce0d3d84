package duplicate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"issue-intelligence/internal/gateway"
	"issue-intelligence/internal/model"
)

const (
	defaultThreshold     = 0.75
	defaultMaxCandidates = 5
	similarContentBar    = 0.9

	// descriptionLimit caps how much description text goes into the
	// embedding search text.
	descriptionLimit = 500

	// embedBatchSize is the provider's batching limit.
	embedBatchSize = 50

	// explanationLimit caps explanation generation for cost control.
	explanationLimit = 3

	// Strict settings used by IsDuplicate.
	strictThreshold   = 0.85
	strictDuplicateAt = 0.9
	noCandidateConf   = 0.9
)

// FindDuplicates searches existing issues for likely duplicates.
func (s *service) FindDuplicates(ctx context.Context, newIssue model.Issue, existing []model.Issue, opts Options) (FindOutput, error) {
	start := time.Now()

	if strings.TrimSpace(newIssue.Title) == "" {
		return FindOutput{}, ErrEmptyTitle
	}
	if opts.Threshold <= 0 {
		opts.Threshold = defaultThreshold
	}
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = defaultMaxCandidates
	}

	// Exact-title fast path: always included, threshold does not apply.
	normTitle := normalizeText(newIssue.Title)
	candidates := make([]Candidate, 0)
	exactIDs := make(map[string]bool)

	searched := 0
	for _, issue := range existing {
		if issue.ID == newIssue.ID {
			continue
		}
		searched++
		if normalizeText(issue.Title) == normTitle {
			candidates = append(candidates, Candidate{
				Issue:           issue,
				SimilarityScore: 1.0,
				MatchType:       MatchExactTitle,
			})
			exactIDs[issue.ID] = true
		}
	}

	semantic, err := s.semanticCandidates(ctx, newIssue, existing, exactIDs, opts.Threshold)
	if err != nil {
		// Exact matches are still a useful degraded result when the
		// embedding provider is down.
		if len(candidates) > 0 {
			s.l.Warnf(ctx, "FindDuplicates: semantic search failed, returning exact matches only: %v", err)
		} else {
			return FindOutput{}, err
		}
	}
	candidates = append(candidates, semantic...)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SimilarityScore > candidates[j].SimilarityScore
	})
	if len(candidates) > opts.MaxCandidates {
		candidates = candidates[:opts.MaxCandidates]
	}

	if opts.IncludeExplanation {
		s.explainTop(ctx, newIssue, candidates)
	}

	return FindOutput{
		Candidates:       candidates,
		SearchedCount:    searched,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// IsDuplicate runs the strict convenience check. The absence of any
// candidate above the strict threshold is reported as high confidence of
// no duplicate.
func (s *service) IsDuplicate(ctx context.Context, newIssue model.Issue, existing []model.Issue) (CheckOutput, error) {
	out, err := s.FindDuplicates(ctx, newIssue, existing, Options{
		Threshold:     strictThreshold,
		MaxCandidates: 1,
	})
	if err != nil {
		return CheckOutput{}, err
	}

	if len(out.Candidates) == 0 {
		return CheckOutput{IsDuplicate: false, Confidence: noCandidateConf}, nil
	}

	top := out.Candidates[0]
	if top.SimilarityScore > strictDuplicateAt {
		return CheckOutput{IsDuplicate: true, Confidence: top.SimilarityScore, Candidate: &top}, nil
	}
	return CheckOutput{IsDuplicate: false, Confidence: 1 - top.SimilarityScore, Candidate: &top}, nil
}

// InvalidateCache drops the cached embedding for an issue.
func (s *service) InvalidateCache(issueID string) {
	s.cache.invalidate(issueID)
}

// ClearCache drops every cached embedding.
func (s *service) ClearCache() {
	s.cache.clear()
}

// semanticCandidates embeds the new issue and every non-exact existing
// issue, then keeps those at or above the threshold.
func (s *service) semanticCandidates(ctx context.Context, newIssue model.Issue, existing []model.Issue, exactIDs map[string]bool, threshold float64) ([]Candidate, error) {
	pool := make([]model.Issue, 0, len(existing))
	for _, issue := range existing {
		if issue.ID == newIssue.ID || exactIDs[issue.ID] {
			continue
		}
		pool = append(pool, issue)
	}
	if len(pool) == 0 {
		return nil, nil
	}

	vectors, err := s.gw.Embed(ctx, []string{searchText(newIssue)}, s.dims)
	if err != nil {
		return nil, fmt.Errorf("failed to embed issue: %w", err)
	}
	newEmbedding := vectors[0]

	embeddings, err := s.embeddingsFor(ctx, pool)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0)
	for _, issue := range pool {
		embedding, ok := embeddings[issue.ID]
		if !ok {
			continue
		}
		similarity, err := CosineSimilarity(newEmbedding, embedding)
		if err != nil {
			// Dimension mismatch is a contract violation, not a skippable
			// candidate.
			return nil, err
		}
		if similarity < threshold {
			continue
		}
		matchType := MatchRelatedTopic
		if similarity > similarContentBar {
			matchType = MatchSimilarContent
		}
		candidates = append(candidates, Candidate{
			Issue:           issue,
			SimilarityScore: similarity,
			MatchType:       matchType,
		})
	}
	return candidates, nil
}

// embeddingsFor resolves embeddings cache-first, batch-embedding the
// misses in provider-sized chunks. Re-requesting an unchanged issue is a
// cache hit with no gateway call.
func (s *service) embeddingsFor(ctx context.Context, issues []model.Issue) (map[string][]float32, error) {
	out := make(map[string][]float32, len(issues))

	type miss struct {
		issueID     string
		contentHash string
		text        string
	}
	misses := make([]miss, 0)

	for _, issue := range issues {
		text := searchText(issue)
		hash := hashContent(text)
		if embedding, ok := s.cache.get(issue.ID, hash); ok {
			out[issue.ID] = embedding
			continue
		}
		misses = append(misses, miss{issueID: issue.ID, contentHash: hash, text: text})
	}

	for offset := 0; offset < len(misses); offset += embedBatchSize {
		end := offset + embedBatchSize
		if end > len(misses) {
			end = len(misses)
		}
		batch := misses[offset:end]

		texts := make([]string, len(batch))
		for i, m := range batch {
			texts[i] = m.text
		}

		vectors, err := s.gw.Embed(ctx, texts, s.dims)
		if err != nil {
			return nil, fmt.Errorf("failed to embed batch of %d issues: %w", len(batch), err)
		}
		if len(vectors) != len(batch) {
			return nil, fmt.Errorf("embedding count mismatch: asked %d, got %d", len(batch), len(vectors))
		}

		for i, m := range batch {
			out[m.issueID] = vectors[i]
			s.cache.set(m.issueID, m.contentHash, vectors[i])
		}
	}

	return out, nil
}

// explainTop generates natural-language explanations for the leading
// candidates. Failures degrade to a numeric phrase.
func (s *service) explainTop(ctx context.Context, newIssue model.Issue, candidates []Candidate) {
	limit := explanationLimit
	if len(candidates) < limit {
		limit = len(candidates)
	}

	for i := 0; i < limit; i++ {
		c := &candidates[i]
		prompt := fmt.Sprintf(
			"Explain in one sentence why these two issues look like duplicates.\n\nIssue A: %s\n%s\n\nIssue B: %s\n%s",
			newIssue.Title, truncate(newIssue.Description, descriptionLimit),
			c.Issue.Title, truncate(c.Issue.Description, descriptionLimit),
		)
		explanation, err := s.gw.Complete(ctx, gateway.CompleteInput{
			Prompt:      prompt,
			Temperature: 0.3,
			MaxTokens:   128,
		})
		if err != nil {
			s.l.Warnf(ctx, "FindDuplicates: explanation failed for issue %s: %v", c.Issue.ID, err)
			c.Explanation = fmt.Sprintf("%.0f%% similar by semantic comparison", c.SimilarityScore*100)
			continue
		}
		c.Explanation = strings.TrimSpace(explanation)
	}
}

// searchText builds the text an issue is embedded from: the title plus
// the leading slice of the description.
func searchText(issue model.Issue) string {
	if issue.Description == "" {
		return issue.Title
	}
	return issue.Title + "\n" + truncate(issue.Description, descriptionLimit)
}

// normalizeText lowercases, strips punctuation, and collapses whitespace.
func normalizeText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
