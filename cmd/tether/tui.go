/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/spf13/cobra"
	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/tui/app"
)

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client app.Client) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner",
		Long: `Open the interactive planner.

KEYS:
    enter         Open / submit
    tab           Next field
    s             Save the selected result
    x             Remove the selected saved item
    r             Reload saved items
    ctrl+d        Dismiss the message
    esc           Back
    q             Quit`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			// JSON debug lines on stderr would tear the alt screen.
			colors.MuteTrace()
			defer colors.UnmuteTrace()

			model, err := client.CreateModel(c.Context())
			if err != nil {
				return err
			}
			if err := client.RunProgram(c.Context(), model); err != nil {
				return cmd.ErrReported
			}
			return nil
		},
	}
}

// tuiCmd represents the tui command
var tuiCmd = NewTUICmd(plannerApp)

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
}
