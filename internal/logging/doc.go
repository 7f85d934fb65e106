// Package logging provides a unified logging interface for the equation
// solver. It abstracts the underlying zerolog implementation, allowing
// consistent structured logging across components while keeping stdout
// reserved for the user-facing report.
package logging
