/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/config"
	"github.com/tether-travel/tether/internal/logging"
	"github.com/tether-travel/tether/internal/version"
)

// ErrReported marks a failure the user has already been told about.
// Execute's caller should exit non-zero without printing it again.
var ErrReported = errors.New("already reported")

var ephemeral bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:               "tether",
	Short:             "Search flights, plan itineraries and check the weather from the terminal.",
	Long:              `Search flights, plan itineraries and check the weather from the terminal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.ShutdownGlobal()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

// setup loads configuration and logging before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	config.Load()
	if ephemeral {
		config.Set("store_backend", "memory")
	}
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
		return nil
	}
	colors.SetLogger(logging.GetGlobal())
	logging.Debug("command started", "command", cmd.CommandPath())
	return nil
}

func init() {
	// Set version for use in help output
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd)
	})

	RootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep cached results in memory only")
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"search",
		"results",
		"save",
		"saved",
		"remove",
		"airports",
		"whoami",
		"tui",
		"help",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-28s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`tether v%s

Search flights, plan itineraries and check the weather from the terminal.

USAGE:
    tether [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --ephemeral     Keep cached results in memory only
    -h, --help      Show help message
`, version.String(), strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
