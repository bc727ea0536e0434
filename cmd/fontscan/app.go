package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/desertwitch/fontscan/internal/configuration"
	"github.com/desertwitch/fontscan/internal/filesystem"
	"github.com/desertwitch/fontscan/internal/fontmeta"
	"github.com/desertwitch/fontscan/internal/inventory"
	"github.com/desertwitch/fontscan/internal/io"
	"github.com/desertwitch/fontscan/internal/schema"
)

var (
	// ErrFatalOutcome is an error that occurs when an operation could not be
	// started at all (e.g. a missing root directory).
	ErrFatalOutcome = errors.New("operation failed")

	// ErrStrictOutcome is an error that occurs in strict mode, when an
	// operation finished but recorded any failures.
	ErrStrictOutcome = errors.New("operation recorded failures (strict mode)")
)

// rootOptions are the persistent options shared by all commands.
type rootOptions struct {
	configFiles []string
	verbose     bool
	cpuProfile  string
	memProfile  string
}

// App is the principal structure wiring together the handlers of the
// program and the process-wide facilities around them.
type App struct {
	opts rootOptions

	logManager *SlogManager
	config     *configuration.AppConfiguration

	fsHandler        *filesystem.Handler
	inventoryHandler *inventory.Handler
	ioHandler        *io.Handler
	fontHandler      *fontmeta.Handler
	configHandler    *configuration.Handler

	memObserver *memoryObserver
	profiles    *profiles
}

// newApp returns a pointer to a new [App] operating on the real system.
func newApp() *App {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	fsHandler := filesystem.NewHandler(osProvider, unixProvider)

	return &App{
		fsHandler:        fsHandler,
		inventoryHandler: inventory.NewHandler(fsHandler),
		ioHandler:        io.NewHandler(fsHandler, osProvider, unixProvider),
		fontHandler:      fontmeta.NewHandler(fsHandler, fontmeta.NewSfntExtractor(osProvider)),
		configHandler:    configuration.NewHandler(&configuration.GodotenvProvider{}),
	}
}

// start sets up logging, loads the configuration and starts the profilers.
func (app *App) start(ctx context.Context) error {
	app.logManager = setupLogging(os.Stderr, app.opts.verbose)

	config, err := app.configHandler.Load(app.opts.configFiles...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.config = config

	app.memObserver = newMemoryObserver(ctx)
	app.profiles = startProfiles(app.opts.cpuProfile, app.opts.memProfile)

	return nil
}

// stop ends the profilers and observers started by [App.start]. It is safe
// to call more than once.
func (app *App) stop() {
	if app.profiles != nil {
		app.profiles.finish()
	}

	if app.memObserver != nil {
		app.memObserver.Stop()
	}
}

// outcomeError maps the failure counts of a finished operation to the
// command's error.
func outcomeError(fatal bool, failures int, strict bool) error {
	if fatal {
		return ErrFatalOutcome
	}

	if strict && failures > 0 {
		return fmt.Errorf("%w: %d failures", ErrStrictOutcome, failures)
	}

	return nil
}
