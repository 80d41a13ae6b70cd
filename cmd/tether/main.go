/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"errors"
	"os"

	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/colors"
)

func main() {
	os.Exit(run(cmd.Execute, plannerApp.Close))
}

// run executes the command tree and maps the outcome to an exit code.
// Failures already shown to the user are not printed again.
func run(execute func() error, closeFn func() error) int {
	colors.Trace(colors.Event{Op: "run", Status: "started"}, nil)
	err := execute()
	if closeErr := closeFn(); closeErr != nil {
		colors.Warning("failed to close store: " + closeErr.Error())
	}
	if err == nil {
		colors.Trace(colors.Event{Op: "run", Status: "completed"}, nil)
		return 0
	}
	colors.Trace(colors.Event{Op: "run", Status: "failed"}, err)
	if !errors.Is(err, cmd.ErrReported) {
		colors.Error(err.Error())
	}
	return 1
}
