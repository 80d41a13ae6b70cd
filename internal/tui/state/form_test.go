package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tether-travel/tether/internal/airports"
	"github.com/tether-travel/tether/internal/domain"
)

func TestFlightFormResolvesLocations(t *testing.T) {
	table := airports.Default()
	f := newForm(domain.Flights)
	f.set(0, "London")
	f.set(1, "JFK (New York, United States)")
	f.set(2, "2025-06-01")
	f.set(3, "2025-06-10")
	f.set(4, "x")

	q := f.query(table).(domain.FlightQuery)
	assert.Equal(t, "LON", q.Source)
	assert.Equal(t, "JFK", q.Destination)
	assert.Equal(t, 0, q.NumTravellers)

	f.set(0, "Atlantis")
	assert.Empty(t, f.query(table).(domain.FlightQuery).Source)
}

func TestItineraryFormUsesCityName(t *testing.T) {
	f := newForm(domain.Itinerary)
	f.set(0, "rome (Italy)")
	assert.Equal(t, domain.ItineraryQuery{City: "Rome", Radius: 5, Limit: 5}, f.query(airports.Default()))
}

func TestWeatherFormCountryLookup(t *testing.T) {
	table := airports.Default()
	f := newForm(domain.Weather)
	f.set(0, "Paris")
	assert.Equal(t, domain.WeatherQuery{City: "Paris", CountryCode: "FR"}, f.query(table))

	f.set(1, "us")
	assert.Equal(t, domain.WeatherQuery{City: "Paris", CountryCode: "US"}, f.query(table))
}

func TestFormFocusWraps(t *testing.T) {
	f := newForm(domain.Weather)
	f.move(1)
	assert.Equal(t, 1, f.focus)
	f.move(1)
	assert.Equal(t, 0, f.focus)
	f.move(-1)
	assert.Equal(t, 1, f.focus)
}

func TestSuggestions(t *testing.T) {
	table := airports.Default()
	f := newForm(domain.Flights)
	assert.Empty(t, f.suggestions(table))

	f.set(0, "lond")
	got := f.suggestions(table)
	assert.Len(t, got, maxSuggestions)
	assert.Equal(t, "LHR (London, United Kingdom)", got[0])

	c := newForm(domain.Itinerary)
	c.set(0, "par")
	assert.Contains(t, c.suggestions(table), "Paris (France)")
}
