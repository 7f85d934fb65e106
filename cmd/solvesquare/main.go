package main

import (
	"context"
	"os"

	"github.com/gavyur/solvesquare/internal/app"
	apperrors "github.com/gavyur/solvesquare/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		os.Exit(apperrors.ExitCode(err))
	}

	exitCode := application.Run(context.Background(), os.Stdin, os.Stdout)
	os.Exit(exitCode)
}
