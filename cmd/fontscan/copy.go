package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/fontscan/internal/report"
	"github.com/desertwitch/fontscan/internal/schema"
	"github.com/desertwitch/fontscan/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type copyOptions struct {
	overwrite bool
	ui        bool
	format    string
	strict    bool
}

// newCopyCommand creates the 'fontscan copy' command.
func newCopyCommand(app *App) *cobra.Command {
	opts := &copyOptions{}

	cmd := &cobra.Command{
		Use:   "copy <source> <target>",
		Short: "Copy all font files of a directory tree into one flat directory",
		Long: `Copy all font files found below the source (up to four levels deep)
into the target directory, which is created if needed. The source structure
is not preserved: equally named files collide, and an existing file fails
the copy unless overwriting is enabled. Every copy is verified by checksum.`,
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, app, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "replace existing files in the target")
	cmd.Flags().BoolVar(&opts.ui, "ui", isatty.IsTerminal(os.Stdout.Fd()), "show a progress interface")
	addOutputFlags(cmd, &opts.format, &opts.strict)

	return cmd
}

func runCopy(cmd *cobra.Command, app *App, opts *copyOptions, source string, target string) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err //nolint:wrapcheck
	}

	overwrite := app.config.CopyOverwrite
	if cmd.Flags().Changed("overwrite") {
		overwrite = opts.overwrite
	}

	var outcome schema.CopyOutcome
	if opts.ui {
		outcome = app.copyWithUI(cmd.Context(), source, target, overwrite)
	} else {
		outcome = app.ioHandler.CopyTree(source, target, overwrite, nil)
	}

	if err := report.WriteCopy(cmd.OutOrStdout(), format, outcome); err != nil {
		return err //nolint:wrapcheck
	}

	return outcomeError(len(outcome.FatalErrors) > 0, outcome.Failed+len(outcome.Warnings), opts.strict)
}

// copyWithUI runs a copy while the progress interface is shown. Logs are
// routed to the interface for as long as it runs. A failing or quit interface
// falls back to the terminal without affecting the copy.
func (app *App) copyWithUI(ctx context.Context, source string, target string, overwrite bool) schema.CopyOutcome {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	uiHandler := ui.NewHandler(ctx, cancel, fmt.Sprintf("Copy %s -> %s", source, target))

	app.logManager.AddHandler(handlerUI, newTintHandler(uiHandler.LogWriter, logLevel(app.opts.verbose)))
	app.logManager.RemoveHandler(handlerTerminal)

	var outcome schema.CopyOutcome
	done := make(chan struct{})

	go func() {
		defer close(done)

		outcome = app.ioHandler.CopyTree(source, target, overwrite, uiHandler)
		uiHandler.Finish()
	}()

	err := uiHandler.Launch()

	app.logManager.AddHandler(handlerTerminal, newTintHandler(os.Stderr, logLevel(app.opts.verbose)))
	app.logManager.RemoveHandler(handlerUI)

	if err != nil {
		slog.Error("UI failure: falling back to terminal.", "err", err)
	}

	<-done

	return outcome
}
