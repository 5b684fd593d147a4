// Package cli provides the command-line interface for issue-guard.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/issue-guard/internal/app"
)

// Command group IDs.
const (
	groupAction = "action"
	groupLocal  = "local"
)

// NewRootCommand creates the root command for issue-guard.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "issue-guard",
		Short: "Close issues that do not follow an issue template",
		Long: `issue-guard checks the body of a GitHub issue against the repository's
issue templates (.github/ISSUE_TEMPLATE/*.md).

An issue follows a template when it contains every section heading of at
least one template, none of its code blocks are left as placeholders, and
every checkbox is ticked. Issues that do not are labeled, commented on and
closed; once fixed, they are reopened.

Run "issue-guard run" from a GitHub Actions workflow triggered by issue
events, or "issue-guard check" locally to preview the verdict.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		// No RunE: shows help when called without a subcommand
	}

	root.AddGroup(
		&cobra.Group{ID: groupAction, Title: "Action Commands:"},
		&cobra.Group{ID: groupLocal, Title: "Local Commands:"},
	)

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupAction

	checkCmd := newCheckCommand(c)
	checkCmd.GroupID = groupLocal

	templatesCmd := newTemplatesCommand(c)
	templatesCmd.GroupID = groupLocal

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupLocal

	root.AddCommand(runCmd, checkCmd, templatesCmd, configCmd)
	return root
}
