package cli

import (
	"fmt"
	"io"

	"github.com/gavyur/solvesquare/internal/format"
	"github.com/gavyur/solvesquare/internal/quadratic"
	"github.com/gavyur/solvesquare/internal/ui"
)

// Display* functions write formatted output to an io.Writer and handle
// colorization; Format* helpers stay pure.

// DisplayBanner prints the program header shown before prompting starts.
func DisplayBanner(version string, out io.Writer) {
	fmt.Fprintln(out, ui.BannerStyle().Render("SolveSquare "+version))
	fmt.Fprintln(out, ui.SubtitleStyle().Render("Let's find roots for equation Ax^2 + Bx + C = 0:"))
	fmt.Fprintln(out)
}

// DisplayRoots prints the human-readable report for a solve outcome.
//
// The wording is stable and line-oriented:
//
//	This equation has infinite number of roots
//	This equation has no roots
//	This equation has one root: x = <value>
//	This equation has two roots: x1 = <value>, x2 = <value>
func DisplayRoots(r quadratic.Roots, out io.Writer) {
	switch r.Kind() {
	case quadratic.KindInfinite:
		fmt.Fprintf(out, "%sThis equation has infinite number of roots%s\n",
			ui.ColorSuccess(), ui.ColorReset())
	case quadratic.KindNone:
		fmt.Fprintf(out, "%sThis equation has no roots%s\n",
			ui.ColorInfo(), ui.ColorReset())
	case quadratic.KindOne:
		x, _ := r.First()
		fmt.Fprintf(out, "This equation has one root: %sx = %s%s\n",
			ui.ColorSuccess(), format.FormatRoot(x), ui.ColorReset())
	case quadratic.KindTwo:
		x1, _ := r.First()
		x2, _ := r.Second()
		fmt.Fprintf(out, "This equation has two roots: %sx1 = %s%s, %sx2 = %s%s\n",
			ui.ColorSuccess(), format.FormatRoot(x1), ui.ColorReset(),
			ui.ColorSuccess(), format.FormatRoot(x2), ui.ColorReset())
	default:
		// Unreachable with a well-formed Roots value.
		fmt.Fprintf(out, "%sSomething strange happened, please remember A, B and C and contact the author%s\n",
			ui.ColorError(), ui.ColorReset())
	}
}

// DisplayInputFailure prints the final message for a run aborted at the
// input layer.
func DisplayInputFailure(err error, out io.Writer) {
	fmt.Fprintf(out, "%sNo equation was solved: %v%s\n",
		ui.ColorError(), err, ui.ColorReset())
}
