package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/issue-guard/internal/app"
	"github.com/runoshun/issue-guard/internal/domain"
	"github.com/runoshun/issue-guard/internal/infra/config"
	"github.com/runoshun/issue-guard/internal/usecase"
)

// ErrIssueInvalid is returned by check when the body does not follow any template.
var ErrIssueInvalid = errors.New("issue does not follow any template")

// newCheckCommand creates the check command.
func newCheckCommand(c *app.Container) *cobra.Command {
	var opts struct {
		TemplateDir string
		Issue       int
		JSON        bool
	}

	cmd := &cobra.Command{
		Use:   "check [FILE|-]",
		Short: "Check an issue body against the templates",
		Long: `Check an issue body against the issue templates without changing anything.

The body is read from FILE, from stdin when FILE is "-" or omitted, or
fetched from GitHub with --issue using the origin remote of the current
repository. Exits with a non-zero status when the body is invalid.

Examples:
  # Check a draft
  issue-guard check draft.md

  # Check an existing issue
  GITHUB_TOKEN=... issue-guard check --issue 42

  # Machine-readable output
  issue-guard check draft.md --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig(config.Overrides{TemplateDir: opts.TemplateDir})
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			in := usecase.CheckIssueInput{}
			subject := "stdin"
			if opts.Issue > 0 {
				if len(args) > 0 {
					return fmt.Errorf("--issue cannot be combined with FILE")
				}
				if c.Repository == nil {
					return domain.ErrNotGitRepository
				}
				owner, repo, err := c.Repository.RemoteRepo()
				if err != nil {
					return fmt.Errorf("resolve repository: %w", err)
				}
				in.Key = domain.IssueKey{Owner: owner, Repo: repo, Number: opts.Issue}
				subject = in.Key.String()
			} else {
				body, name, err := readBody(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				in.Body = body
				subject = name
			}

			uc, err := c.CheckIssueUseCase(cfg)
			if err != nil {
				return fmt.Errorf("create issue tracker: %w", err)
			}
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if len(out.Templates) == 0 {
				c.Logger.Warn("no issue templates found", "category", "check", "dir", cfg.TemplateDir)
			}

			if opts.JSON {
				if err := writeReportJSON(cmd.OutOrStdout(), subject, out.Verdict); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
			} else {
				renderReport(cmd.OutOrStdout(), DefaultStyles(), subject, out.Verdict)
			}

			if !out.Verdict.IsValid() {
				return ErrIssueInvalid
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Issue, "issue", 0, "Fetch and check issue N from the origin repository")
	cmd.Flags().StringVar(&opts.TemplateDir, "template-dir", "", "Issue template directory (default .github/ISSUE_TEMPLATE)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the verdict as JSON")

	return cmd
}

// readBody reads the body from the named file, or from stdin for "-" or no argument.
func readBody(stdin io.Reader, args []string) (body, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read body: %w", err)
	}
	return string(data), args[0], nil
}
