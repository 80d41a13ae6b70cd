/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/domain"
)

type savedClient interface {
	Saved(ctx context.Context, d domain.Domain) ([]domain.SearchResult, error)
	SavedAll(ctx context.Context) (map[domain.Domain][]domain.SearchResult, error)
}

// NewSavedCmd creates the saved command with explicit dependencies.
func NewSavedCmd(client savedClient) *cobra.Command {
	if client == nil {
		panic("NewSavedCmd: client dependency cannot be nil")
	}

	savedCmd := &cobra.Command{
		Use:   "saved <flights|itinerary|all>",
		Short: "List saved flights or activities",
		Long: `List the flights or activities saved to your account.

'all' fetches both lists at once.`,
		Args: cobra.ExactArgs(1),
	}
	out := addOutputFlags(savedCmd)
	savedCmd.RunE = func(c *cobra.Command, args []string) error {
		if _, err := out.formatter(c.OutOrStdout()); err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(args[0]), "all") {
			all, err := client.SavedAll(c.Context())
			if err != nil {
				return err
			}
			for _, d := range domain.All {
				items, ok := all[d]
				if !ok {
					continue
				}
				fmt.Fprintf(c.OutOrStdout(), "Saved %s:\n", d)
				if err := printSaved(c, out, d, items); err != nil {
					return err
				}
			}
			return nil
		}

		d, err := savableDomainArg(args[0])
		if err != nil {
			return err
		}
		items, err := client.Saved(c.Context(), d)
		if err != nil {
			return err
		}
		return printSaved(c, out, d, items)
	}
	return savedCmd
}

func printSaved(c *cobra.Command, out *outputOptions, d domain.Domain, items []domain.SearchResult) error {
	if len(items) == 0 && out.template == "" && out.format != "json" {
		fmt.Fprintln(c.OutOrStdout(), "Nothing saved yet.")
		return nil
	}
	return out.print(c, d, items)
}

// savedCmd represents the saved command
var savedCmd = NewSavedCmd(plannerApp)

func init() {
	cmd.RootCmd.AddCommand(savedCmd)
}
