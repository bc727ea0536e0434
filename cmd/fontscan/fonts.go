package main

import (
	"github.com/desertwitch/fontscan/internal/report"
	"github.com/spf13/cobra"
)

type fontsOptions struct {
	format string
	strict bool
}

// newFontsCommand creates the 'fontscan fonts' command.
func newFontsCommand(app *App) *cobra.Command {
	opts := &fontsOptions{}

	cmd := &cobra.Command{
		Use:   "fonts <dir>",
		Short: "Extract names and styles of all font files in a directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(opts.format)
			if err != nil {
				return err //nolint:wrapcheck
			}

			outcome := app.fontHandler.ParseDirectory(args[0])

			if err := report.WriteFontParse(cmd.OutOrStdout(), format, outcome); err != nil {
				return err //nolint:wrapcheck
			}

			fatal := outcome.Total == 0 && len(outcome.Errors) > 0

			return outcomeError(fatal, len(outcome.Errors), opts.strict)
		},
	}

	addOutputFlags(cmd, &opts.format, &opts.strict)

	return cmd
}
