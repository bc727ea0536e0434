package main

import (
	"github.com/desertwitch/fontscan/internal/report"
	"github.com/spf13/cobra"
)

// newRootCommand creates the 'fontscan' command with all subcommands.
func newRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fontscan",
		Short: "Inventory directory trees and collect the font files within them",
		Long: `fontscan inventories directory trees with statistics about their
entries, lists and parses the font files within them and copies those font
files into a single flat directory, with a verified copy of every file.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.start(cmd.Context())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.stop()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringSliceVar(&app.opts.configFiles, "config", nil, "env-style configuration file (repeatable, later files win)")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&app.opts.cpuProfile, "cpuprofile", "", "write cpu profile to file")
	flags.StringVar(&app.opts.memProfile, "memprofile", "", "write memory profile to file")

	cmd.AddCommand(newScanCommand(app))
	cmd.AddCommand(newCopyCommand(app))
	cmd.AddCommand(newFontsCommand(app))

	return cmd
}

// addOutputFlags adds the flags shared by all commands producing a report.
func addOutputFlags(cmd *cobra.Command, format *string, strict *bool) {
	cmd.Flags().StringVarP(format, "format", "f", string(report.FormatText), "output format (text, json, yaml)")
	cmd.Flags().BoolVar(strict, "strict", false, "exit with failure if any non-fatal error was recorded")
}
