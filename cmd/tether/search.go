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
	"github.com/tether-travel/tether/internal/airports"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/flow"
	"github.com/tether-travel/tether/internal/format"
)

type searchClient interface {
	Search(ctx context.Context, q domain.Query) (*flow.Outcome, error)
	Airports() (*airports.Table, error)
}

// NewSearchCmd creates the search command with explicit dependencies.
func NewSearchCmd(client searchClient) *cobra.Command {
	if client == nil {
		panic("NewSearchCmd: client dependency cannot be nil")
	}

	searchCmd := &cobra.Command{
		Use:   "search <flights|itinerary|weather>",
		Short: "Search flights, activities or the weather",
		Long: `Search flights, activities or the weather.

Flight and itinerary results replace the last results of that kind and are
kept until the next successful search. Weather reports are only printed.

USAGE:
    tether search flights --from London --to JFK --depart 2025-06-01 --return 2025-06-10
    tether search itinerary --city Paris --radius 5 --limit 5
    tether search weather --city Paris`,
	}

	searchCmd.AddCommand(newSearchFlightsCmd(client), newSearchItineraryCmd(client), newSearchWeatherCmd(client))
	return searchCmd
}

func newSearchFlightsCmd(client searchClient) *cobra.Command {
	var q domain.FlightQuery
	var from, to string
	c := &cobra.Command{
		Use:   "flights",
		Short: "Search return flights between two cities or airports",
		Args:  cobra.NoArgs,
	}
	out := addOutputFlags(c)
	c.Flags().StringVar(&from, "from", "", "Departure city, city code or airport code")
	c.Flags().StringVar(&to, "to", "", "Destination city, city code or airport code")
	c.Flags().StringVar(&q.DepartDate, "depart", "", "Departure date (YYYY-MM-DD)")
	c.Flags().StringVar(&q.ReturnDate, "return", "", "Return date (YYYY-MM-DD)")
	c.Flags().IntVarP(&q.NumTravellers, "travellers", "n", 1, "Number of travellers (1-8)")
	c.RunE = func(c *cobra.Command, args []string) error {
		table, err := client.Airports()
		if err != nil {
			return err
		}
		q.Source = resolveLocation(table, from)
		q.Destination = resolveLocation(table, to)
		return runSearch(c, client, q, out)
	}
	return c
}

func newSearchItineraryCmd(client searchClient) *cobra.Command {
	var q domain.ItineraryQuery
	c := &cobra.Command{
		Use:   "itinerary",
		Short: "Find activities around a city",
		Args:  cobra.NoArgs,
	}
	out := addOutputFlags(c)
	c.Flags().StringVar(&q.City, "city", "", "City to plan around")
	c.Flags().IntVar(&q.Radius, "radius", 5, "Search radius in km (1-20)")
	c.Flags().IntVar(&q.Limit, "limit", 5, "Number of activities (1-10)")
	c.RunE = func(c *cobra.Command, args []string) error {
		q.City = strings.TrimSpace(q.City)
		return runSearch(c, client, q, out)
	}
	return c
}

func newSearchWeatherCmd(client searchClient) *cobra.Command {
	var q domain.WeatherQuery
	c := &cobra.Command{
		Use:   "weather",
		Short: "Show the current weather and forecast of a city",
		Args:  cobra.NoArgs,
	}
	c.Flags().StringVar(&q.City, "city", "", "City name")
	c.Flags().StringVar(&q.CountryCode, "country", "", "Two-letter country code; looked up from the city table when empty")
	c.RunE = func(c *cobra.Command, args []string) error {
		table, err := client.Airports()
		if err != nil {
			return err
		}
		q.City = strings.TrimSpace(q.City)
		if q.CountryCode == "" {
			if city, ok := table.Lookup(q.City); ok {
				q.City = city.City
				q.CountryCode = city.CountryCode
			}
		}
		q.CountryCode = strings.ToUpper(strings.TrimSpace(q.CountryCode))
		outcome, err := client.Search(c.Context(), q)
		if err != nil {
			return err
		}
		return format.Weather(outcome.Weather, c.OutOrStdout())
	}
	return c
}

func runSearch(c *cobra.Command, client searchClient, q domain.Query, out *outputOptions) error {
	f, err := out.formatter(c.OutOrStdout())
	if err != nil {
		return err
	}
	outcome, err := client.Search(c.Context(), q)
	if err != nil {
		return err
	}
	if len(outcome.Results) == 0 {
		fmt.Fprintln(c.OutOrStdout(), "No results found.")
		return nil
	}
	return f.FormatResults(q.Domain(), outcome.Results, c.OutOrStdout())
}

// resolveLocation maps a city name, city code or airport code to the code
// the gateway expects. Input the city table does not know resolves to ""
// so that validation asks for a valid selection.
func resolveLocation(table *airports.Table, input string) string {
	code, ok := table.ResolveCode(strings.TrimSpace(input))
	if !ok {
		return ""
	}
	return code
}

// searchCmd represents the search command
var searchCmd = NewSearchCmd(plannerApp)

func init() {
	cmd.RootCmd.AddCommand(searchCmd)
}
