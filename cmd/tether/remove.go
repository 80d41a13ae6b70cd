/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/domain"
)

type removeClient interface {
	Remove(ctx context.Context, d domain.Domain, id string) error
}

// NewRemoveCmd creates the remove command with explicit dependencies.
func NewRemoveCmd(client removeClient) *cobra.Command {
	if client == nil {
		panic("NewRemoveCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "remove <flights|itinerary> <id>",
		Short: "Remove a saved flight or activity",
		Long: `Remove a saved flight or activity by the ID shown in 'tether saved'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			d, err := savableDomainArg(args[0])
			if err != nil {
				return err
			}
			return client.Remove(c.Context(), d, strings.TrimSpace(args[1]))
		},
	}
}

// removeCmd represents the remove command
var removeCmd = NewRemoveCmd(plannerApp)

func init() {
	cmd.RootCmd.AddCommand(removeCmd)
}
