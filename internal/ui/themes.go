package ui

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// Theme defines a color scheme for console output.
// Each field contains an ANSI escape code for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Success indicates positive outcomes (a solved equation).
	Success string
	// Warning is used for caution messages (a rejected input line).
	Warning string
	// Error indicates failures (an exhausted retry budget).
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Primary: "\033[38;5;39m",  // Bright blue
		Success: "\033[38;5;82m",  // Bright green
		Warning: "\033[38;5;220m", // Yellow
		Error:   "\033[38;5;196m", // Red
		Info:    "\033[38;5;141m", // Purple
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set, --no-color is provided, or stdout is
	// not a terminal.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used by tests to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility, and falls back to no colors when stdout is not a terminal.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	// Any non-empty NO_COLOR value disables colors (per no-color.org).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}

// ColorPrimary returns the active theme's primary accent escape code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSuccess returns the active theme's success escape code.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the active theme's warning escape code.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the active theme's error escape code.
func ColorError() string { return GetCurrentTheme().Error }

// ColorInfo returns the active theme's info escape code.
func ColorInfo() string { return GetCurrentTheme().Info }

// ColorBold returns the active theme's bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the active theme's reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
