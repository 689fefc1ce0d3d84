package assignment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"issue-intelligence/internal/model"
)

const (
	baseScore        = 0.5
	expertiseWeight  = 0.3
	recentWorkWeight = 0.2
	workloadWeight   = 0.2
	urgencyBonus     = 0.1

	baseConfidence = 0.7
)

// SuggestAssignees scores every member against the issue and returns
// the ranked shortlist. A single-member team is assigned outright.
func (s *service) SuggestAssignees(ctx context.Context, issue model.Issue, members []model.TeamMember, opts Options) (SuggestOutput, error) {
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = defaultMaxSuggestions
	}

	if len(members) == 0 {
		return SuggestOutput{
			Suggestions: []Suggestion{},
			Reasoning:   "No team members were provided, so no assignee can be suggested.",
		}, nil
	}

	if len(members) == 1 {
		only := members[0]
		return SuggestOutput{
			Suggestions: []Suggestion{{
				UserID:     only.UserID,
				UserName:   only.UserName,
				Score:      1.0,
				Reasons:    []string{"Only team member available"},
				Confidence: 1.0,
			}},
			Reasoning: fmt.Sprintf("%s is the only team member, so they are the assignee.", only.UserName),
		}, nil
	}

	suggestions := make([]Suggestion, 0, len(members))
	for _, member := range members {
		suggestions = append(suggestions, s.scoreMember(issue, member, !opts.IgnoreWorkload))
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > opts.MaxSuggestions {
		suggestions = suggestions[:opts.MaxSuggestions]
	}

	s.l.Debugf(ctx, "SuggestAssignees: ranked %d members for issue %s, top %s (%.2f)",
		len(members), issue.ID, suggestions[0].UserName, suggestions[0].Score)

	return SuggestOutput{
		Suggestions: suggestions,
		Reasoning:   buildReasoning(suggestions),
	}, nil
}

// scoreMember applies the additive factor model: base 0.5, expertise,
// recent work, availability, workload, and an urgency bonus, clamped to
// [0,1]. Confidence shrinks with each missing or negative signal.
func (s *service) scoreMember(issue model.Issue, member model.TeamMember, considerWorkload bool) Suggestion {
	score := baseScore
	confidence := baseConfidence
	reasons := make([]string, 0, 4)

	issueText := issueSearchText(issue)

	// Expertise match.
	if len(member.Expertise) == 0 {
		confidence *= 0.8
	} else {
		matched := 0
		for _, tag := range member.Expertise {
			if expertiseMatches(tag, issueText) {
				matched++
			}
		}
		if matched > 0 {
			ratio := float64(matched) / float64(len(member.Expertise))
			score += expertiseWeight * ratio
			reasons = append(reasons, fmt.Sprintf("Expertise match: %d of %d areas relevant", matched, len(member.Expertise)))
		}
	}

	// Recent work match.
	if recentScore := recentWorkScore(issue, member); recentScore > 0 {
		score += recentWorkWeight * recentScore
		reasons = append(reasons, "Recently worked on similar issues")
	}

	// Availability.
	available := member.Availability == model.AvailabilityAvailable
	switch member.Availability {
	case model.AvailabilityAvailable:
		score += 0.1
		reasons = append(reasons, "Currently available")
	case model.AvailabilityAway:
		score -= 0.3
		confidence *= 0.5
		reasons = append(reasons, "Currently away")
	}

	// Workload.
	workloadKnown := member.CurrentWorkload != nil
	if !workloadKnown {
		confidence *= 0.9
	} else if considerWorkload {
		w := *member.CurrentWorkload
		score += workloadScore(w) * workloadWeight
		switch {
		case w <= 2:
			reasons = append(reasons, "Light workload")
		case w > 6:
			reasons = append(reasons, fmt.Sprintf("Overloaded with %d issues", w))
		}
	}

	// Urgency bonus for urgent work going to someone who can start now.
	if (issue.Priority == model.PriorityUrgent || issue.Priority == model.PriorityHigh) &&
		available && workloadKnown && *member.CurrentWorkload < 3 {
		score += urgencyBonus
		reasons = append(reasons, "Can take on urgent work immediately")
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return Suggestion{
		UserID:     member.UserID,
		UserName:   member.UserName,
		Score:      score,
		Reasons:    reasons,
		Confidence: confidence,
	}
}

// workloadScore maps an in-progress count to a signed multiplier. The
// applied weight is this value times workloadWeight.
func workloadScore(workload int) float64 {
	switch {
	case workload <= 2:
		return 1.0
	case workload <= 4:
		return 0.5
	case workload <= 6:
		return 0
	default:
		return -0.5 * float64(workload-6)
	}
}

// recentWorkScore is 0.5 when the member recently handled the issue's
// type, otherwise a label-overlap score capped at 1.0, otherwise 0.
func recentWorkScore(issue model.Issue, member model.TeamMember) float64 {
	issueType := strings.ToLower(string(issue.Type))
	for _, recent := range member.RecentlyAssigned {
		if strings.ToLower(recent) == issueType {
			return 0.5
		}
	}

	matches := 0
	for _, label := range issue.Labels {
		labelLower := strings.ToLower(label)
		for _, recent := range member.RecentlyAssigned {
			recentLower := strings.ToLower(recent)
			if strings.Contains(recentLower, labelLower) || strings.Contains(labelLower, recentLower) {
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	score := 0.3 + 0.1*float64(matches)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func issueSearchText(issue model.Issue) string {
	parts := []string{issue.Title, issue.Description}
	parts = append(parts, issue.Labels...)
	return strings.ToLower(strings.Join(parts, " "))
}

func buildReasoning(suggestions []Suggestion) string {
	if len(suggestions) == 0 {
		return "No suitable assignee was found."
	}

	top := suggestions[0]
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s is the best match (score %.2f)", top.UserName, top.Score)
	if len(top.Reasons) > 0 {
		fmt.Fprintf(&sb, ": %s", strings.Join(top.Reasons, "; "))
	}
	sb.WriteString(".")

	if len(suggestions) > 1 {
		names := make([]string, 0, len(suggestions)-1)
		for _, alt := range suggestions[1:] {
			names = append(names, alt.UserName)
		}
		fmt.Fprintf(&sb, " Alternatives: %s.", strings.Join(names, ", "))
	}
	return sb.String()
}
