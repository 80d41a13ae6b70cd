package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/domain"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

const flight = `{"FlightResponse":{"number_of_segments":2,"flight_id":"F-1","price_per_person":"412.50",
"outbound":[{"SegmentResponse":{"departure_airport":"LHR","destination_airport":"JFK","departure_date":"2025-06-01"}}],
"inbound":[{"SegmentResponse":{"departure_airport":"JFK","destination_airport":"LHR","departure_date":"2025-06-10"}}]}}`

func TestAnsiColorNumber(t *testing.T) {
	assert.Equal(t, "34", ansiColorNumber(colors.Blue))
	assert.Equal(t, "31", ansiColorNumber(colors.Red))
	assert.Equal(t, "", ansiColorNumber("x"))
}

func TestFlightRow(t *testing.T) {
	row := plain(FlightRow(RowState{Item: domain.SearchResult(flight), Width: 120}))
	assert.Contains(t, row, "LHR → JFK")
	assert.Contains(t, row, "2025-06-01 → 2025-06-10")
	assert.Contains(t, row, "412.50")
	assert.True(t, strings.HasPrefix(row, "  "))

	selected := plain(FlightRow(RowState{Item: domain.SearchResult(flight), Selected: true, Width: 120}))
	assert.True(t, strings.HasPrefix(selected, selectedPointer))

	pending := plain(FlightRow(RowState{Item: domain.SearchResult(flight), Pending: true, Spinner: "*", Width: 120}))
	assert.True(t, strings.HasPrefix(pending, "*"))

	bad := plain(FlightRow(RowState{Item: domain.SearchResult(`[]`)}))
	assert.Contains(t, bad, "unreadable flight")
}

func TestActivityRow(t *testing.T) {
	item := domain.SearchResult(`{"city":"Paris","activity_id":7,"activity_name":"Louvre","price_amount":25,"price_currency":"EUR"}`)
	row := plain(Row(domain.Itinerary, RowState{Item: item, Width: 120}))
	assert.Contains(t, row, "Louvre")
	assert.Contains(t, row, "25 EUR")
	assert.Contains(t, row, "Paris")
	assert.Contains(t, plain(ColumnHeader(domain.Itinerary)), "ACTIVITY")
	assert.Contains(t, plain(ColumnHeader(domain.Flights)), "ROUTE")
}

func TestRowsAreTruncatedToWidth(t *testing.T) {
	row := plain(FlightRow(RowState{Item: domain.SearchResult(flight), Width: 20}))
	assert.LessOrEqual(t, len([]rune(row)), 20)
	assert.True(t, strings.HasSuffix(row, "..."))
}

func TestHeader(t *testing.T) {
	assert.Contains(t, plain(Header(HeaderState{Title: "tether"})), "not signed in")
	h := plain(Header(HeaderState{Title: "tether", Principal: &domain.Principal{UserID: "u1", UserDetails: "ada@example.com"}}))
	assert.Contains(t, h, "signed in as ada@example.com")
}

func TestToast(t *testing.T) {
	assert.Empty(t, Toast(nil))

	ok := Toast(&domain.Notification{Text: "Flight saved successfully!", Kind: domain.KindSuccess})
	assert.Equal(t, "✓ Flight saved successfully!", plain(ok))

	bad := Toast(&domain.Notification{Text: "Error saving flight.", Kind: domain.KindError})
	assert.Equal(t, "✗ Error saving flight.", plain(bad))
	expected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Red))).Render("✗ Error saving flight.")
	assert.Equal(t, expected, bad)
}

func TestWeather(t *testing.T) {
	out := plain(Weather(&domain.WeatherReport{
		Current: domain.CurrentWeather{City: "Paris", CountryCode: "FR", WeatherMain: "Clouds", WeatherDescription: "overcast", Temperature: 14.2},
		Forecast: []domain.ForecastDay{
			{Date: "2025-06-02", TemperatureMin: 9, TemperatureMax: 18, PrecipitationProbabilityMax: 40},
		},
	}))
	assert.Contains(t, out, "Paris, FR")
	assert.Contains(t, out, "Clouds (overcast)  14.2°C")
	assert.Contains(t, out, "2025-06-02")
	assert.Contains(t, out, "40%")
	assert.Contains(t, plain(Weather(nil)), "No weather report")
}

func TestMenuAndFooter(t *testing.T) {
	menu := strings.Split(plain(Menu([]string{"a", "b"}, 1)), "\n")
	assert.Equal(t, []string{"  a", selectedPointer + " b"}, menu)

	assert.Equal(t, "q: quit  |  esc: back", plain(Footer(FooterState{Hints: []string{"q: quit", "esc: back"}})))
	assert.Empty(t, Suggestions(nil))
	assert.Contains(t, plain(Suggestions([]string{"LHR (London, United Kingdom)"})), "LHR (London")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "ab", truncate("abcdefgh", 2))
	assert.Equal(t, "abc", truncate("abc", 0))
}
