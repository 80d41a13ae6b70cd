// Package render draws the pieces of the planner TUI.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/domain"
)

const (
	routeWidth      = 16
	dateWidth       = 23
	priceWidth      = 10
	legsWidth       = 5
	nameWidth       = 36
	defaultWidth    = 80
	pendingMarker   = "…"
	selectedPointer = "›"
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
)

// HeaderState defines the inputs needed to render the title bar.
type HeaderState struct {
	Title     string
	Principal *domain.Principal
	Width     int
}

// RowState defines the inputs needed to render one result row.
type RowState struct {
	Item     domain.SearchResult
	Selected bool
	// Pending replaces the row marker with Spinner while a save or
	// remove of the row is in progress.
	Pending bool
	Spinner string
	Width   int
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	Hints []string
	Width int
}

// Header renders the title bar with the sign-in status.
func Header(state HeaderState) string {
	who := dimStyle.Render("not signed in")
	if name := state.Principal.DisplayName(); name != "" {
		who = "signed in as " + name
	}
	return titleStyle.Render(state.Title) + "  " + who
}

// FlightHeader renders the column titles of a flights list.
func FlightHeader() string {
	return titleStyle.Render(fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s",
		routeWidth, "ROUTE",
		dateWidth, "DATES",
		legsWidth, "LEGS",
		priceWidth, "PER PERSON",
	))
}

// ActivityHeader renders the column titles of an itinerary list.
func ActivityHeader() string {
	return titleStyle.Render(fmt.Sprintf("  %-*s  %-*s  %s",
		nameWidth, "ACTIVITY",
		priceWidth, "PRICE",
		"CITY",
	))
}

// FlightRow renders one flight offer.
func FlightRow(state RowState) string {
	offer, err := domain.DecodeFlightOffer(state.Item)
	if err != nil {
		return rowStyle(state.Selected).Render(marker(state) + " " + dimStyle.Render("unreadable flight"))
	}
	dates := ""
	if len(offer.Outbound) > 0 {
		dates = offer.Outbound[0].DepartureDate
	}
	if len(offer.Inbound) > 0 {
		dates += " → " + offer.Inbound[0].DepartureDate
	}
	legs := len(offer.Outbound) + len(offer.Inbound)
	if offer.NumberOfSegments > 0 {
		legs = offer.NumberOfSegments
	}
	row := fmt.Sprintf("%s %-*s  %-*s  %-*d  %-*s",
		marker(state),
		routeWidth, truncate(offer.Route(), routeWidth),
		dateWidth, truncate(dates, dateWidth),
		legsWidth, legs,
		priceWidth, truncate(offer.PricePerPerson, priceWidth),
	)
	return rowStyle(state.Selected).Render(truncate(row, width(state.Width)))
}

// ActivityRow renders one itinerary activity.
func ActivityRow(state RowState) string {
	act, err := domain.DecodeActivity(state.Item)
	if err != nil {
		return rowStyle(state.Selected).Render(marker(state) + " " + dimStyle.Render("unreadable activity"))
	}
	price := strings.TrimSpace(act.PriceAmount + " " + act.PriceCurrency)
	row := fmt.Sprintf("%s %-*s  %-*s  %s",
		marker(state),
		nameWidth, truncate(act.ActivityName, nameWidth),
		priceWidth, truncate(price, priceWidth),
		act.City,
	)
	return rowStyle(state.Selected).Render(truncate(row, width(state.Width)))
}

// Row renders item with the row layout of d.
func Row(d domain.Domain, state RowState) string {
	if d == domain.Itinerary {
		return ActivityRow(state)
	}
	return FlightRow(state)
}

// ColumnHeader renders the column titles of d.
func ColumnHeader(d domain.Domain) string {
	if d == domain.Itinerary {
		return ActivityHeader()
	}
	return FlightHeader()
}

// Weather renders the current conditions and the daily forecast.
func Weather(report *domain.WeatherReport) string {
	if report == nil {
		return dimStyle.Render("No weather report")
	}
	c := report.Current
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s, %s", c.City, c.CountryCode)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s (%s)  %.1f°C, feels like %.1f°C\n", c.WeatherMain, c.WeatherDescription, c.Temperature, c.FeelsLike)
	fmt.Fprintf(&b, "humidity %.0f%%  wind %.1f m/s  clouds %.0f%%  pressure %.0f hPa\n", c.Humidity, c.WindSpeed, c.Cloudiness, c.Pressure)
	if c.Sunrise != "" || c.Sunset != "" {
		fmt.Fprintf(&b, "sunrise %s  sunset %s\n", c.Sunrise, c.Sunset)
	}
	if len(report.Forecast) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("%-12s %8s %8s %6s", "DATE", "MIN", "MAX", "RAIN")))
		for _, day := range report.Forecast {
			fmt.Fprintf(&b, "\n%-12s %7.1f° %7.1f° %5.0f%%", day.Date, day.TemperatureMin, day.TemperatureMax, day.PrecipitationProbabilityMax)
		}
	}
	return b.String()
}

// Toast renders the current notification line. A nil notification renders
// an empty line so the layout does not jump.
func Toast(n *domain.Notification) string {
	if n == nil {
		return ""
	}
	style := lipgloss.NewStyle().Bold(true)
	prefix := "✓ "
	switch n.Kind {
	case domain.KindError:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
		prefix = "✗ "
	default:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	}
	return style.Render(prefix + n.Text)
}

// Menu renders a vertical list with the cursor on one entry.
func Menu(items []string, cursor int) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		if i == cursor {
			lines = append(lines, rowStyle(true).Render(selectedPointer+" "+item))
			continue
		}
		lines = append(lines, "  "+item)
	}
	return strings.Join(lines, "\n")
}

// Suggestions renders picker suggestions under a form field.
func Suggestions(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return dimStyle.Render("    " + strings.Join(labels, "\n    "))
}

// Empty renders the placeholder of an empty list.
func Empty(text string) string {
	return dimStyle.Render(text)
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	return dimStyle.Render(truncate(strings.Join(state.Hints, "  |  "), width(state.Width)))
}

func marker(state RowState) string {
	switch {
	case state.Pending:
		if state.Spinner != "" {
			return state.Spinner
		}
		return pendingMarker
	case state.Selected:
		return selectedPointer
	default:
		return " "
	}
}

func rowStyle(selected bool) lipgloss.Style {
	if selected {
		return lipgloss.NewStyle().Background(lipgloss.Color(ansiColorNumber(colors.Blue))).Foreground(lipgloss.Color("0"))
	}
	return lipgloss.NewStyle()
}

func width(w int) int {
	if w <= 0 {
		return defaultWidth
	}
	return w
}

func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= 3 {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-3]) + "..."
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
