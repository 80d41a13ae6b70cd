/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/format"
)

type whoamiClient interface {
	Principal(ctx context.Context) (*domain.Principal, error)
}

// NewWhoamiCmd creates the whoami command with explicit dependencies.
func NewWhoamiCmd(client whoamiClient) *cobra.Command {
	if client == nil {
		panic("NewWhoamiCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			p, err := client.Principal(c.Context())
			if err != nil {
				return err
			}
			return format.Principal(p, c.OutOrStdout())
		},
	}
}

// whoamiCmd represents the whoami command
var whoamiCmd = NewWhoamiCmd(plannerApp)

func init() {
	cmd.RootCmd.AddCommand(whoamiCmd)
}
