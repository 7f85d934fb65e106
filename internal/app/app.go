// Package app wires the application together: configuration, theme,
// logging, the interactive prompter and the solver, and maps run outcomes
// to process exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/gavyur/solvesquare/internal/cli"
	"github.com/gavyur/solvesquare/internal/config"
	apperrors "github.com/gavyur/solvesquare/internal/errors"
	"github.com/gavyur/solvesquare/internal/logging"
	"github.com/gavyur/solvesquare/internal/ui"
)

// Application represents the solvesquare application instance.
type Application struct {
	Config    config.AppConfig
	Solver    Solver
	Log       logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSolver sets a custom Solver for the application.
func WithSolver(s Solver) AppOption {
	return func(a *Application) { a.Solver = s }
}

// WithLogger sets a custom Logger for the application.
func WithLogger(log logging.Logger) AppOption {
	return func(a *Application) { a.Log = log }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Solver == nil {
		app.Solver = CoreSolver{}
	}
	if app.Log == nil {
		app.Log = logging.NewDefaultLogger()
	}

	programName := "solvesquare"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes one interactive solve session: banner, three prompts, solve,
// report. It returns the process exit code.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	cli.DisplayBanner(Version, out)

	prompter := cli.NewCoefficientPrompter(a.Config.MaxInputAttempts)
	prompter.SetInput(in)
	prompter.SetOutput(out)
	prompter.SetLogger(a.Log)

	coefs, err := prompter.PromptCoefficients()
	if err != nil {
		a.Log.Warn("run aborted at input layer", logging.Err(err))
		cli.DisplayInputFailure(err, out)
		return apperrors.ExitCode(err)
	}

	if ctx.Err() != nil {
		return apperrors.ExitCode(ctx.Err())
	}

	roots := a.Solver.Solve(coefs)
	a.Log.Debug("solve finished",
		logging.Float64("a", coefs.A),
		logging.Float64("b", coefs.B),
		logging.Float64("c", coefs.C),
		logging.String("outcome", roots.Kind().String()))

	cli.DisplayRoots(roots, out)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
