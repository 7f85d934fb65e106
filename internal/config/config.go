// Package config holds the application configuration and command-line
// parsing. The solver itself needs no configuration: the flags only tune
// presentation, never the prompt/report contract.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	apperrors "github.com/gavyur/solvesquare/internal/errors"
)

// DefaultMaxInputAttempts is the retry budget per coefficient: the number
// of input lines accepted for one variable before the run is aborted.
const DefaultMaxInputAttempts = 3

// AppConfig represents the application configuration determined from the
// command line.
type AppConfig struct {
	// NoColor disables colorized output.
	NoColor bool
	// Verbose enables debug-level logging on stderr.
	Verbose bool
	// MaxInputAttempts is the retry budget per coefficient.
	MaxInputAttempts int
}

// ParseConfig parses command-line arguments into an AppConfig.
// It uses a ContinueOnError FlagSet so parse failures surface as errors
// rather than terminating the process; flag.ErrHelp is returned unchanged
// so the caller can exit cleanly on --help.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for usage and parse error output.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp, a ConfigError, or nil.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{MaxInputAttempts: DefaultMaxInputAttempts}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colorized output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging on stderr")
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Solves A*x^2 + B*x + C = 0 for coefficients read interactively.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("parsing flags: %v", err)
	}

	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected argument %q: coefficients are read from standard input", fs.Arg(0))
	}

	return cfg, nil
}
