/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/format"
)

type airportsClient interface {
	Options(query string) ([]domain.AirportOption, error)
}

// NewAirportsCmd creates the airports command with explicit dependencies.
func NewAirportsCmd(client airportsClient) *cobra.Command {
	if client == nil {
		panic("NewAirportsCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "airports [query]",
		Short: "List airports of cities matching a name",
		Long: `List one line per airport of every city whose name contains the query,
ignoring case. Without a query every airport is listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = strings.TrimSpace(args[0])
			}
			options, err := client.Options(query)
			if err != nil {
				return err
			}
			if len(options) == 0 {
				fmt.Fprintf(c.OutOrStdout(), "No airports match %q.\n", query)
				return nil
			}
			return format.AirportOptions(options, c.OutOrStdout())
		},
	}
}

// airportsCmd represents the airports command
var airportsCmd = NewAirportsCmd(plannerApp)

func init() {
	cmd.RootCmd.AddCommand(airportsCmd)
}
