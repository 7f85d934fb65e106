// Package format provides pure formatting helpers for console output.
// Format* functions return strings and perform no I/O.
package format

import "strconv"

// FormatRoot formats a root value for display. It uses the shortest decimal
// representation that round-trips ('g' with automatic precision), so small
// integers render without a trailing fraction ("2", not "2.000000") and
// irrational roots keep full float64 precision.
func FormatRoot(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
