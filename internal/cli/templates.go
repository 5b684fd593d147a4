package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/issue-guard/internal/app"
	"github.com/runoshun/issue-guard/internal/infra/config"
	"github.com/runoshun/issue-guard/internal/usecase"
)

// newTemplatesCommand creates the templates command.
func newTemplatesCommand(c *app.Container) *cobra.Command {
	var templateDir string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List issue templates and their required sections",
		Long: `List the issue templates found in the template directory together with
the section titles an issue must contain to follow each of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.LoadConfig(config.Overrides{TemplateDir: templateDir})
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out, err := c.ListTemplatesUseCase(cfg).Execute(cmd.Context(), usecase.ListTemplatesInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Templates) == 0 {
				_, _ = fmt.Fprintf(w, "No templates found in %s\n", cfg.TemplatePath(c.Config.RepoRoot))
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tFILE\tLABELS\tSECTIONS")
			for _, t := range out.Templates {
				labels := strings.Join(t.Labels, ",")
				if labels == "" {
					labels = "-"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, t.File, labels, strings.Join(t.Titles(), ", "))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&templateDir, "template-dir", "", "Issue template directory (default .github/ISSUE_TEMPLATE)")

	return cmd
}
