package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/issue-guard/internal/app"
	"github.com/runoshun/issue-guard/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging defaults, the
repository config file (.github/issue-guard.toml) and the environment.
The token is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			cfg := out.Config

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if out.Exists {
				_, _ = fmt.Fprintf(w, "- %s\n", out.Path)
			} else {
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.Path)
			}
			_, _ = fmt.Fprintln(w, "- environment")

			_, _ = fmt.Fprintln(w, "\n[Effective config]")
			_, _ = fmt.Fprintf(w, "token          = %s\n", cfg.MaskedToken())
			_, _ = fmt.Fprintf(w, "label          = %q\n", cfg.ClosedLabel)
			_, _ = fmt.Fprintf(w, "template_dir   = %s\n", out.TemplatePath)
			_, _ = fmt.Fprintf(w, "event_path     = %q\n", cfg.EventPath)
			_, _ = fmt.Fprintf(w, "api_url        = %s\n", cfg.APIURL)
			_, _ = fmt.Fprintf(w, "log_level      = %s\n", cfg.Log.Level)
			_, _ = fmt.Fprintf(w, "message        = %q\n", cfg.CloseMessage)

			if len(cfg.Warnings) > 0 {
				_, _ = fmt.Fprintln(w, "\n[Warnings]")
				for _, warning := range cfg.Warnings {
					_, _ = fmt.Fprintf(w, "- %s\n", warning)
				}
			}
			return nil
		},
	}
}
