/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/domain"
)

type resultsClient interface {
	Results(d domain.Domain) ([]domain.SearchResult, error)
}

// NewResultsCmd creates the results command with explicit dependencies.
func NewResultsCmd(client resultsClient) *cobra.Command {
	if client == nil {
		panic("NewResultsCmd: client dependency cannot be nil")
	}

	resultsCmd := &cobra.Command{
		Use:   "results <flights|itinerary>",
		Short: "Show the results of the last search",
		Long: `Show the results of the last successful flight or itinerary search.

Results are kept between runs until the next successful search of the same kind.`,
		Args: cobra.ExactArgs(1),
	}
	out := addOutputFlags(resultsCmd)
	resultsCmd.RunE = func(c *cobra.Command, args []string) error {
		d, err := savableDomainArg(args[0])
		if err != nil {
			return err
		}
		items, err := client.Results(d)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintf(c.OutOrStdout(), "No %s results yet. Run 'tether search %s' first.\n", d, d)
			return nil
		}
		return out.print(c, d, items)
	}
	return resultsCmd
}

// resultsCmd represents the results command
var resultsCmd = NewResultsCmd(plannerApp)

func init() {
	cmd.RootCmd.AddCommand(resultsCmd)
}
