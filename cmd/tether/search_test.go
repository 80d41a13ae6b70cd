package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tether-travel/tether/cmd"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/flow"
)

func TestSearchFlightsResolvesLocations(t *testing.T) {
	client := newFakeClient()
	client.outcome = &flow.Outcome{Domain: domain.Flights, Results: results(testFlight)}

	out, err := execute(t, NewSearchCmd(client), "flights",
		"--from", "london", "--to", "jfk", "--depart", "2025-06-01", "--return", "2025-06-10", "-n", "2")
	require.NoError(t, err)

	require.Len(t, client.queries, 1)
	assert.Equal(t, domain.FlightQuery{
		Source:        "LON",
		Destination:   "JFK",
		DepartDate:    "2025-06-01",
		ReturnDate:    "2025-06-10",
		NumTravellers: 2,
	}, client.queries[0])
	assert.Contains(t, out, "LHR → JFK")
	assert.Contains(t, out, "412.50")
}

func TestSearchFlightsDropsUnknownLocations(t *testing.T) {
	client := newFakeClient()
	_, err := execute(t, NewSearchCmd(client), "flights", "--from", "xyz", "--to", "  ")
	require.NoError(t, err)
	q := client.queries[0].(domain.FlightQuery)
	assert.Empty(t, q.Source)
	assert.Empty(t, q.Destination)
	assert.Equal(t, 1, q.NumTravellers)
}

func TestSearchReportsNoResults(t *testing.T) {
	client := newFakeClient()
	out, err := execute(t, NewSearchCmd(client), "itinerary", "--city", " Paris ")
	require.NoError(t, err)
	assert.Equal(t, "No results found.\n", out)
	assert.Equal(t, domain.ItineraryQuery{City: "Paris", Radius: 5, Limit: 5}, client.queries[0])
}

func TestSearchItineraryTemplate(t *testing.T) {
	client := newFakeClient()
	client.outcome = &flow.Outcome{Domain: domain.Itinerary, Results: results(testActivity)}
	out, err := execute(t, NewSearchCmd(client), "itinerary", "--city", "Paris", "--template", "{{id}}:{{name}}")
	require.NoError(t, err)
	assert.Equal(t, "42:Louvre\n", out)
}

func TestSearchRejectsBadOutputBeforeSearching(t *testing.T) {
	client := newFakeClient()
	_, err := execute(t, NewSearchCmd(client), "itinerary", "--city", "Paris", "--format", "xml")
	require.Error(t, err)
	_, err = execute(t, NewSearchCmd(client), "itinerary", "--city", "Paris", "--template", "{{hotel}}")
	require.Error(t, err)
	assert.Empty(t, client.queries)
}

func TestSearchWeatherLooksUpCountry(t *testing.T) {
	client := newFakeClient()
	client.outcome = &flow.Outcome{Domain: domain.Weather, Weather: &domain.WeatherReport{
		Current: domain.CurrentWeather{City: "Paris", CountryCode: "FR", WeatherMain: "Clear", WeatherDescription: "clear sky", Temperature: 20},
	}}

	out, err := execute(t, NewSearchCmd(client), "weather", "--city", "paris")
	require.NoError(t, err)
	assert.Equal(t, domain.WeatherQuery{City: "Paris", CountryCode: "FR"}, client.queries[0])
	assert.Contains(t, out, "Paris, FR: Clear (clear sky), 20.0°C")
}

func TestSearchWeatherKeepsExplicitCountry(t *testing.T) {
	client := newFakeClient()
	_, err := execute(t, NewSearchCmd(client), "weather", "--city", "Springfield", "--country", "us")
	require.NoError(t, err)
	assert.Equal(t, domain.WeatherQuery{City: "Springfield", CountryCode: "US"}, client.queries[0])
}

func TestSearchPropagatesReportedFailure(t *testing.T) {
	client := newFakeClient()
	client.searchErr = reported(flow.ErrBusy)
	_, err := execute(t, NewSearchCmd(client), "itinerary", "--city", "Paris")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cmd.ErrReported))
	assert.True(t, errors.Is(err, flow.ErrBusy))
}
