package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the
// application. These codes are used to signal the outcome of the program
// execution to the OS.
const (
	ExitSuccess      = 0 // Indicates successful execution, whatever the root outcome.
	ExitErrorGeneric = 1 // Indicates a generic error.
	ExitErrorInput   = 2 // Indicates the input retry budget was exhausted or input ended.
	ExitErrorConfig  = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as invalid flags.
// It indicates that the application cannot proceed due to incorrect usage.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InputError represents a single unparsable numeric token read for a
// variable. It is recoverable: the driver retries within the retry budget.
type InputError struct {
	// Variable is the name of the coefficient being read ("A", "B", "C").
	Variable string
	// Token is the offending input, with the line terminator stripped.
	Token string
}

// Error returns a formatted message describing the bad token.
func (e InputError) Error() string {
	return fmt.Sprintf("unparsable value %q for %s", e.Token, e.Variable)
}

// RetryLimitError indicates the retry budget for a variable was exhausted.
// It is fatal to the run: no further variables are read and no solve is
// performed.
type RetryLimitError struct {
	// Variable is the name of the coefficient being read.
	Variable string
	// Attempts is the number of attempts that were made.
	Attempts int
}

// Error returns a formatted message describing the exhausted budget.
func (e RetryLimitError) Error() string {
	return fmt.Sprintf("no valid value for %s after %d attempts", e.Variable, e.Attempts)
}

// ReadError wraps a failure of the underlying input stream (including EOF)
// while reading a variable. Like RetryLimitError it is fatal to the run.
type ReadError struct {
	// Variable is the name of the coefficient being read.
	Variable string
	// Cause is the underlying stream error.
	Cause error
}

// Error returns a formatted message including the underlying cause.
func (e ReadError) Error() string {
	return fmt.Sprintf("reading value for %s: %v", e.Variable, e.Cause)
}

// Unwrap returns the underlying stream error, allowing errors.Is checks
// against io.EOF and friends.
func (e ReadError) Unwrap() error { return e.Cause }

// ValidationError represents an input that parsed as a number but is not an
// acceptable coefficient (NaN or an infinity). It identifies which variable
// failed and why.
type ValidationError struct {
	// Field is the name of the variable that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsFatalInput reports whether err ends the run at the input layer: an
// exhausted retry budget or a broken/exhausted input stream.
func IsFatalInput(err error) bool {
	var retryErr RetryLimitError
	var readErr ReadError
	return errors.As(err, &retryErr) || errors.As(err, &readErr)
}

// ExitCode maps an error to the process exit code.
//
// Returns:
//   - int: ExitSuccess for nil, ExitErrorConfig for configuration errors,
//     ExitErrorInput for fatal input errors, ExitErrorGeneric otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	switch {
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case IsFatalInput(err) || errors.Is(err, io.EOF):
		return ExitErrorInput
	default:
		return ExitErrorGeneric
	}
}
