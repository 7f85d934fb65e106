package app

import (
	"fmt"
	"io"
)

// Version metadata, overridable at build time via -ldflags.
var (
	// Version is the semantic version of the build.
	Version = "1.0.0"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// HasVersionFlag reports whether the arguments request the version banner.
// It is checked before full flag parsing so --version works regardless of
// other arguments.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "solvesquare %s (commit %s, built %s)\n", Version, Commit, BuildDate)
}
