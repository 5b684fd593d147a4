package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/issue-guard/internal/app"
	"github.com/runoshun/issue-guard/internal/domain"
	"github.com/runoshun/issue-guard/internal/infra/config"
	"github.com/runoshun/issue-guard/internal/usecase"
)

// newRunCommand creates the run command.
func newRunCommand(c *app.Container) *cobra.Command {
	var o config.Overrides

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Enforce issue templates on the triggering issue",
		Long: `Enforce issue templates on the issue from the triggering event.

Reads the event payload from GITHUB_EVENT_PATH (or --event-path) and
checks the issue body against the templates. An invalid issue gets the
closed-issues label (when configured), a comment and is closed. A valid,
closed issue carrying the label has it removed and is reopened.

Inputs are read from the environment the Actions runner sets:
  INPUT_GITHUB-TOKEN (or GITHUB_TOKEN), INPUT_ISSUE-CLOSE-MESSAGE,
  INPUT_CLOSED-ISSUES-LABEL, INPUT_TEMPLATE-DIR

Examples:
  # Inside a workflow step
  issue-guard run

  # Replay a saved event locally
  GITHUB_TOKEN=... issue-guard run --event-path event.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.LoadConfig(o)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.EventPath == "" {
				return fmt.Errorf("%s is not set: %w", config.EnvEventPath, domain.ErrInvalidEvent)
			}

			ev, err := c.Events.LoadEvent(cfg.EventPath)
			if err != nil {
				return fmt.Errorf("load event: %w", err)
			}

			uc, err := c.EnforceTemplateUseCase(cfg)
			if err != nil {
				return fmt.Errorf("create issue tracker: %w", err)
			}
			out, err := uc.Execute(cmd.Context(), usecase.EnforceTemplateInput{
				Issue:   ev.Issue,
				Payload: ev.Payload,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", ev.Issue.Key, out.Action.Display(), out.Reason)
			return nil
		},
	}

	cmd.Flags().StringVar(&o.EventPath, "event-path", "", "Path to the event payload JSON (default $GITHUB_EVENT_PATH)")
	cmd.Flags().StringVar(&o.Token, "token", "", "GitHub token (default $INPUT_GITHUB-TOKEN or $GITHUB_TOKEN)")
	cmd.Flags().StringVar(&o.CloseMessage, "message", "", "Close comment template, e.g. '@${issue.user.login}: ...'")
	cmd.Flags().StringVar(&o.ClosedLabel, "label", "", "Label added to closed issues and required to reopen")
	cmd.Flags().StringVar(&o.TemplateDir, "template-dir", "", "Issue template directory (default .github/ISSUE_TEMPLATE)")
	cmd.Flags().StringVar(&o.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	return cmd
}
