/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/domain"
)

type saveClient interface {
	Save(ctx context.Context, d domain.Domain, index int) error
}

// NewSaveCmd creates the save command with explicit dependencies.
func NewSaveCmd(client saveClient) *cobra.Command {
	if client == nil {
		panic("NewSaveCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "save <flights|itinerary> <index>",
		Short: "Save one of the last search results",
		Long: `Save one of the last search results to your account.

The index is the # column of 'tether results'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			d, err := savableDomainArg(args[0])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 1 {
				return fmt.Errorf("save: invalid index %q", args[1])
			}
			return client.Save(c.Context(), d, index)
		},
	}
}

// saveCmd represents the save command
var saveCmd = NewSaveCmd(plannerApp)

func init() {
	cmd.RootCmd.AddCommand(saveCmd)
}
