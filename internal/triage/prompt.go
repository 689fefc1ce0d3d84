package triage

import (
	"fmt"
	"strings"
)

// analyzeSystemPrompt is the system instruction for full issue analysis.
// The label vocabulary and workspace context are appended per call.
const analyzeSystemPrompt = `You are an issue triage assistant for a project management tool.

Classify the issue and return ONLY a valid JSON object, no markdown, no code fences:
{
  "type": "BUG" | "TASK" | "STORY" | "EPIC" | "SUBTASK" | "MILESTONE",
  "priority": {"value": "low" | "medium" | "high" | "urgent", "confidence": 0.0-1.0, "reasoning": "..."},
  "labels": [{"name": "...", "confidence": 0.0-1.0}],
  "story_points": 1 | 2 | 3 | 5 | 8 | 13 | 21,
  "summary": "one-sentence summary",
  "confidence": 0.0-1.0,
  "reasoning": "..."
}

Guidelines:
- BUG: something is broken. TASK: concrete unit of work. STORY: user-facing
  feature. EPIC: large multi-story effort. SUBTASK: part of a parent issue.
  MILESTONE: a dated delivery marker.
- urgent: production down or data loss. high: blocks users, no workaround.
  medium: has a workaround. low: cosmetic or nice-to-have.
- story_points follow the Fibonacci scale; omit the field if the issue is
  not estimable.
- Prefer labels from the known vocabulary; invent a new lowercase label
  only when nothing in the vocabulary fits.`

func buildAnalyzePrompt(input AnalyzeInput) (system, user string) {
	var sb strings.Builder
	sb.WriteString(analyzeSystemPrompt)

	if len(input.ExistingLabels) > 0 {
		sb.WriteString("\n\nKnown label vocabulary: ")
		sb.WriteString(strings.Join(input.ExistingLabels, ", "))
	}
	if input.ProjectContext != "" {
		sb.WriteString("\n\nProject context: ")
		sb.WriteString(input.ProjectContext)
	}
	if input.WorkspaceContext != "" {
		sb.WriteString("\n\nWorkspace context: ")
		sb.WriteString(input.WorkspaceContext)
	}

	user = fmt.Sprintf("Title: %s\n\nDescription:\n%s", input.Title, input.Description)
	return sb.String(), user
}

func buildPriorityPrompt(title, description string) (system, user string) {
	system = `Assess the priority of the issue. Return ONLY a JSON object:
{"value": "low" | "medium" | "high" | "urgent", "confidence": 0.0-1.0, "reasoning": "..."}

urgent: production down or data loss. high: blocks users, no workaround.
medium: has a workaround. low: cosmetic or nice-to-have.`
	user = fmt.Sprintf("Title: %s\n\nDescription:\n%s", title, description)
	return system, user
}

func buildLabelsPrompt(title, description string, existingLabels []string) (system, user string) {
	var sb strings.Builder
	sb.WriteString(`Suggest labels for the issue. Return ONLY a JSON object:
{"labels": [{"name": "...", "confidence": 0.0-1.0}]}

Suggest at most 5 labels, lowercase. Prefer labels from the known
vocabulary; invent a new one only when nothing fits.`)
	if len(existingLabels) > 0 {
		sb.WriteString("\n\nKnown label vocabulary: ")
		sb.WriteString(strings.Join(existingLabels, ", "))
	}
	user = fmt.Sprintf("Title: %s\n\nDescription:\n%s", title, description)
	return sb.String(), user
}

func buildStoryPointsPrompt(title, description string) (system, user string) {
	system = `Estimate the story points for this issue on the Fibonacci scale
(1, 2, 3, 5, 8, 13, 21). Respond with the number only, nothing else.`
	user = fmt.Sprintf("Title: %s\n\nDescription:\n%s", title, description)
	return system, user
}
