// Package ui centralizes terminal presentation concerns: the ANSI color
// theme used by the console driver and the lipgloss styles for the program
// banner. Colorization is disabled automatically when NO_COLOR is set or
// when stdout is not a terminal, so the report stream stays clean when
// piped.
package ui
