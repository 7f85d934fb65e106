// Package cli provides the interactive console driver: prompting for
// coefficients with a bounded retry budget, and presenting the solve
// outcome as a human-readable report.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/gavyur/solvesquare/internal/errors"
	"github.com/gavyur/solvesquare/internal/logging"
	"github.com/gavyur/solvesquare/internal/quadratic"
	"github.com/gavyur/solvesquare/internal/ui"
)

// coefficientNames lists the prompted variables, in prompt order.
var coefficientNames = [3]string{"A", "B", "C"}

// CoefficientPrompter reads coefficient values interactively, one per line.
// A line that does not parse as a finite real number is discarded whole and
// the variable is asked again, up to the retry budget. The zero retry
// budget is not meaningful; use NewCoefficientPrompter.
type CoefficientPrompter struct {
	maxAttempts int
	in          *bufio.Reader
	out         io.Writer
	log         logging.Logger
}

// NewCoefficientPrompter creates a prompter reading from stdin and writing
// to stdout with the given per-variable retry budget.
func NewCoefficientPrompter(maxAttempts int) *CoefficientPrompter {
	return &CoefficientPrompter{
		maxAttempts: maxAttempts,
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		log:         logging.NopLogger{},
	}
}

// SetInput sets a custom input reader (useful for testing).
func (p *CoefficientPrompter) SetInput(in io.Reader) {
	p.in = bufio.NewReader(in)
}

// SetOutput sets a custom output writer (useful for testing).
func (p *CoefficientPrompter) SetOutput(out io.Writer) {
	p.out = out
}

// SetLogger sets the structured logger for input-layer events.
func (p *CoefficientPrompter) SetLogger(log logging.Logger) {
	p.log = log
}

// PromptCoefficients prompts for A, B and C in sequence and returns the
// validated coefficients. The first fatal input error (exhausted retry
// budget or broken stream) aborts the sequence: remaining variables are
// not asked.
func (p *CoefficientPrompter) PromptCoefficients() (quadratic.Coefficients, error) {
	values := [3]float64{}
	for i, name := range coefficientNames {
		value, err := p.PromptValue(name)
		if err != nil {
			return quadratic.Coefficients{}, err
		}
		values[i] = value
	}
	return quadratic.Coefficients{A: values[0], B: values[1], C: values[2]}, nil
}

// PromptValue prompts for a single named variable until a finite real
// number is read or the retry budget is exhausted.
//
// Returns:
//   - float64: The parsed value on success.
//   - error: A RetryLimitError when the budget is exhausted, or a
//     ReadError when the input stream fails (including EOF).
func (p *CoefficientPrompter) PromptValue(name string) (float64, error) {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		fmt.Fprintf(p.out, "%sEnter a real-number value for %s%s%s> ",
			ui.ColorPrimary(), ui.ColorBold(), name, ui.ColorReset())

		line, readErr := p.in.ReadString('\n')
		if readErr != nil && line == "" {
			// Nothing left to read for this attempt.
			p.log.Warn("input stream ended", logging.String("variable", name))
			return 0, apperrors.ReadError{Variable: name, Cause: readErr}
		}

		token := strings.TrimSpace(line)
		value, parseErr := parseCoefficient(name, token)
		if parseErr == nil {
			p.log.Debug("coefficient accepted",
				logging.String("variable", name),
				logging.Float64("value", value),
				logging.Int("attempt", attempt))
			return value, nil
		}

		// The whole line was consumed by ReadString, so leftover
		// tokens from the bad input cannot poison the next prompt.
		p.log.Warn("coefficient rejected",
			logging.String("variable", name),
			logging.Int("attempt", attempt),
			logging.Err(parseErr))

		if attempt < p.maxAttempts {
			fmt.Fprintf(p.out, "%sIncorrect input! Let's try again!%s\n",
				ui.ColorWarning(), ui.ColorReset())
		} else {
			fmt.Fprintf(p.out, "%sIncorrect input! That was the last try.%s\n",
				ui.ColorError(), ui.ColorReset())
		}

		if readErr != nil {
			// The bad token was the final, unterminated line.
			return 0, apperrors.ReadError{Variable: name, Cause: readErr}
		}
	}

	return 0, apperrors.RetryLimitError{Variable: name, Attempts: p.maxAttempts}
}

// parseCoefficient parses one input line into a finite coefficient value.
func parseCoefficient(name, token string) (float64, error) {
	if token == "" {
		return 0, apperrors.InputError{Variable: name, Token: token}
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, apperrors.InputError{Variable: name, Token: token}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, apperrors.ValidationError{Field: name, Message: "value must be finite"}
	}
	return value, nil
}
