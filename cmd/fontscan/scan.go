package main

import (
	"strings"

	"github.com/desertwitch/fontscan/internal/mime"
	"github.com/desertwitch/fontscan/internal/report"
	"github.com/desertwitch/fontscan/internal/schema"
	"github.com/spf13/cobra"
)

type scanOptions struct {
	recursive      bool
	hidden         bool
	maxDepth       uint
	followSymlinks bool
	filters        []string
	maxSize        uint64
	excludes       []string
	fontsOnly      bool
	format         string
	strict         bool
}

// newScanCommand creates the 'fontscan scan' command.
func newScanCommand(app *App) *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan <root>",
		Short: "Inventory a directory tree",
		Long: `Inventory a directory tree: all entries are classified, filtered and
sorted (directories first, then by name) and summarized with counts, total
size and the largest file.

Values given as flags override those of the configuration file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, app, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "descend into subdirectories")
	flags.BoolVar(&opts.hidden, "hidden", false, "include hidden entries")
	flags.UintVar(&opts.maxDepth, "max-depth", 0, "maximum nesting depth to enter (0 = root only)")
	flags.BoolVar(&opts.followSymlinks, "follow-symlinks", false, "follow symbolic links")
	flags.StringSliceVar(&opts.filters, "filter", nil, "retain entries matching name, extension or content type (repeatable)")
	flags.Uint64Var(&opts.maxSize, "max-size", 0, "exclude files larger than this many bytes")
	flags.StringSliceVar(&opts.excludes, "exclude", nil, "gitignore-style exclusion pattern (repeatable)")
	flags.BoolVar(&opts.fontsOnly, "fonts", false,
		"list only font files: "+strings.Join(mime.FontExtensions(), ", ")+" (recursive, ignores other scan flags)")
	addOutputFlags(cmd, &opts.format, &opts.strict)

	return cmd
}

// traversalConfig merges the flags that were set into the configuration.
func (opts *scanOptions) traversalConfig(cmd *cobra.Command, base schema.TraversalConfig) schema.TraversalConfig {
	cfg := base
	flags := cmd.Flags()

	if flags.Changed("recursive") {
		cfg.Recursive = opts.recursive
	}
	if flags.Changed("hidden") {
		cfg.IncludeHidden = opts.hidden
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = schema.DepthLimit(opts.maxDepth)
	}
	if flags.Changed("follow-symlinks") {
		cfg.FollowSymlinks = opts.followSymlinks
	}
	if flags.Changed("filter") {
		cfg.NameFilters = opts.filters
	}
	if flags.Changed("max-size") {
		cfg.MaxEntrySize = schema.SizeLimit(opts.maxSize)
	}
	if flags.Changed("exclude") {
		cfg.ExcludePatterns = opts.excludes
	}

	return cfg
}

func runScan(cmd *cobra.Command, app *App, opts *scanOptions, root string) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err //nolint:wrapcheck
	}

	var outcome schema.TraversalOutcome
	var stats schema.Stats

	if opts.fontsOnly {
		outcome, stats = app.inventoryHandler.ListFonts(root)
		err = report.WriteFontListing(cmd.OutOrStdout(), format, outcome, stats)
	} else {
		cfg := opts.traversalConfig(cmd, app.config.Traversal)
		outcome, stats = app.inventoryHandler.Scan(root, cfg)
		err = report.WriteScan(cmd.OutOrStdout(), format, outcome, stats)
	}
	if err != nil {
		return err //nolint:wrapcheck
	}

	// Nothing inventoried and a recorded failure means the root itself failed.
	fatal := len(outcome.Entries) == 0 && stats.ErrorCount > 0

	return outcomeError(fatal, stats.ErrorCount, opts.strict)
}
