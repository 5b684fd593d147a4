package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/issue-guard/internal/domain"
)

// CheckIssueInput contains the parameters for checking an issue body.
// When Key.Number is set, the body is fetched from the tracker instead.
type CheckIssueInput struct {
	Body string          // Issue body to check
	Key  domain.IssueKey // Issue to fetch (optional)
}

// CheckIssueOutput contains the result of checking an issue body.
type CheckIssueOutput struct {
	Issue     *domain.Issue     // Fetched issue, nil when checking a local body
	Templates []domain.Template // Templates the body was checked against
	Verdict   domain.Verdict
}

// CheckIssue is the use case for evaluating a body without changing anything.
type CheckIssue struct {
	tracker   domain.IssueTracker
	templates domain.TemplateSource
	checker   *domain.Checker
}

// NewCheckIssue creates a new CheckIssue use case.
// tracker may be nil when only local bodies are checked.
func NewCheckIssue(tracker domain.IssueTracker, templates domain.TemplateSource, checker *domain.Checker) *CheckIssue {
	return &CheckIssue{
		tracker:   tracker,
		templates: templates,
		checker:   checker,
	}
}

// Execute loads the templates and checks the body against them.
func (uc *CheckIssue) Execute(ctx context.Context, in CheckIssueInput) (*CheckIssueOutput, error) {
	out := &CheckIssueOutput{}
	body := in.Body

	if in.Key.Number > 0 {
		if uc.tracker == nil {
			return nil, fmt.Errorf("fetch issue %s: %w", in.Key, domain.ErrMissingToken)
		}
		issue, err := uc.tracker.GetIssue(ctx, in.Key)
		if err != nil {
			return nil, fmt.Errorf("get issue: %w", err)
		}
		out.Issue = issue
		body = issue.Body
	}

	templates, err := uc.templates.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	out.Templates = templates
	out.Verdict = uc.checker.Check(body, templates)
	return out, nil
}
