package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/runoshun/issue-guard/internal/domain"
)

// EnforceTemplateInput contains the parameters for enforcing templates on an issue.
type EnforceTemplateInput struct {
	Payload domain.Payload // Event payload used to render the close message
	Issue   domain.Issue   // Issue as read from the event
}

// EnforceTemplateOutput contains the result of enforcing templates.
type EnforceTemplateOutput struct {
	Reason  string         // Why the action was (or was not) taken
	Action  domain.Action  // Transition applied to the issue
	Verdict domain.Verdict // Conformance verdict for the issue body
}

// EnforceTemplate is the use case that closes issues not following a template
// and reopens previously closed ones once they are fixed.
type EnforceTemplate struct {
	tracker   domain.IssueTracker
	templates domain.TemplateSource
	checker   *domain.Checker
	logger    *slog.Logger
	cfg       domain.Config
}

// NewEnforceTemplate creates a new EnforceTemplate use case.
func NewEnforceTemplate(
	cfg domain.Config,
	tracker domain.IssueTracker,
	templates domain.TemplateSource,
	checker *domain.Checker,
	logger *slog.Logger,
) *EnforceTemplate {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &EnforceTemplate{
		tracker:   tracker,
		templates: templates,
		checker:   checker,
		logger:    logger.With("category", "lifecycle"),
		cfg:       cfg,
	}
}

// Execute checks the issue body and applies at most one transition.
func (uc *EnforceTemplate) Execute(ctx context.Context, in EnforceTemplateInput) (*EnforceTemplateOutput, error) {
	templates, err := uc.templates.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if len(templates) == 0 {
		uc.logger.Warn("no issue templates found; every issue will be treated as invalid",
			"dir", uc.cfg.TemplateDir)
	}

	verdict := uc.checker.Check(in.Issue.Body, templates)
	log := uc.logger.With("issue", in.Issue.Key.String())
	log.Debug("checked issue body",
		"titles_match", verdict.TitlesMatch,
		"code_blocks_valid", verdict.CodeBlocksValid,
		"checkboxes_ticked", verdict.AllCheckboxesTicked,
		"template", verdict.MatchedTemplate)

	out := &EnforceTemplateOutput{Verdict: verdict, Action: domain.ActionNone}
	if verdict.IsValid() {
		return uc.reopen(ctx, log, in.Issue, out)
	}
	return uc.close(ctx, log, in, out)
}

// reopen reopens a closed issue that carries the closed label.
func (uc *EnforceTemplate) reopen(ctx context.Context, log *slog.Logger, issue domain.Issue, out *EnforceTemplateOutput) (*EnforceTemplateOutput, error) {
	if !issue.IsClosed() {
		out.Reason = "issue is open and follows a template"
		return out, nil
	}
	if uc.cfg.ClosedLabel == "" {
		out.Reason = "no closed-issues label configured"
		return out, nil
	}

	// Labels in the event may be stale; ask the tracker.
	labels, err := uc.tracker.ListLabels(ctx, issue.Key)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	current := issue
	current.Labels = labels
	if !current.HasLabel(uc.cfg.ClosedLabel) {
		out.Reason = fmt.Sprintf("issue was not closed by label %q", uc.cfg.ClosedLabel)
		return out, nil
	}

	if err := uc.tracker.RemoveLabel(ctx, issue.Key, uc.cfg.ClosedLabel); err != nil {
		return nil, fmt.Errorf("remove label: %w", err)
	}
	if err := uc.tracker.UpdateState(ctx, issue.Key, domain.StateOpen); err != nil {
		return nil, fmt.Errorf("reopen issue: %w", err)
	}

	out.Action = domain.ActionReopen
	out.Reason = "issue now follows a template"
	log.Info("issue reopened", "label", uc.cfg.ClosedLabel)
	return out, nil
}

// close labels, comments on and closes an issue that does not follow any template.
func (uc *EnforceTemplate) close(ctx context.Context, log *slog.Logger, in EnforceTemplateInput, out *EnforceTemplateOutput) (*EnforceTemplateOutput, error) {
	// Render first so a bad message fails before anything is mutated.
	message, err := domain.RenderMessage(uc.cfg.CloseMessage, in.Payload)
	if err != nil {
		return nil, fmt.Errorf("render close message: %w", err)
	}

	key := in.Issue.Key
	if uc.cfg.ClosedLabel != "" {
		if err := uc.tracker.AddLabels(ctx, key, []string{uc.cfg.ClosedLabel}); err != nil {
			return nil, fmt.Errorf("add label: %w", err)
		}
	}
	if err := uc.tracker.CreateComment(ctx, key, message); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if err := uc.tracker.UpdateState(ctx, key, domain.StateClosed); err != nil {
		return nil, fmt.Errorf("close issue: %w", err)
	}

	out.Action = domain.ActionClose
	out.Reason = invalidReason(out.Verdict)
	log.Info("issue closed", "reason", out.Reason)
	return out, nil
}

// invalidReason summarizes which checks failed.
func invalidReason(v domain.Verdict) string {
	var reasons []string
	if !v.TitlesMatch {
		reasons = append(reasons, "missing template sections")
	}
	if !v.CodeBlocksValid {
		reasons = append(reasons, fmt.Sprintf("%d unfilled code block(s)", v.InvalidBlocks))
	}
	if !v.AllCheckboxesTicked {
		reasons = append(reasons, fmt.Sprintf("%d unticked checkbox(es)", v.UntickedCount))
	}
	if len(reasons) == 0 {
		return "issue does not follow a template"
	}
	return strings.Join(reasons, "; ")
}
