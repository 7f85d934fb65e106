package ui

import "github.com/charmbracelet/lipgloss"

// Banner styling for the program header printed before prompting.

// BannerStyle returns the lipgloss style for the program banner. When the
// no-color theme is active the border remains but all coloring is dropped,
// matching the plain-text contract for non-terminal output.
func BannerStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	if GetCurrentTheme().Name == "none" {
		return style
	}
	return style.
		BorderForeground(lipgloss.Color("39")).
		Foreground(lipgloss.Color("208")).
		Bold(true)
}

// SubtitleStyle returns the style for the line under the banner describing
// the equation form being solved.
func SubtitleStyle() lipgloss.Style {
	if GetCurrentTheme().Name == "none" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
}
