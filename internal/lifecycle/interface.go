package lifecycle

import (
	"context"

	"issue-intelligence/internal/model"
)

// Service is the integration surface callers invoke on issue lifecycle
// transitions. Hooks compose triage, duplicate detection, and rule
// evaluation; they never touch storage — everything they need arrives
// in the AutomationContext.
type Service interface {
	// OnIssueCreated runs triage, duplicate detection, and issue_created
	// rules for a freshly created issue. Advisory sub-failures are
	// logged and omitted from the output, never returned as errors.
	OnIssueCreated(ctx context.Context, sc model.Scope, payload IssueCreatedPayload, actx AutomationContext) (HookOutput, error)

	// OnIssueUpdated re-runs duplicate detection when the text changed,
	// emits a status_changed event when the status changed, and always
	// evaluates issue_updated rules.
	OnIssueUpdated(ctx context.Context, sc model.Scope, payload IssueUpdatedPayload, actx AutomationContext) (HookOutput, error)
}
