// Package apperrors defines structured application error types for the
// input layer, allowing a clear distinction between error classes
// (unparsable token, exhausted retry budget, configuration) and carrying
// the underlying cause where one exists.
//
// The computational core has no error taxonomy of its own: it is a total
// function over finite inputs. Everything here belongs to the console
// driver.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf
// with %w. Types wrapping a cause implement Unwrap() to support
// errors.Is() and errors.As().
package apperrors
