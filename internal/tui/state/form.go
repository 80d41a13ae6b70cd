package state

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tether-travel/tether/internal/airports"
	"github.com/tether-travel/tether/internal/domain"
)

const maxSuggestions = 5

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldAirport
	fieldCity
)

type field struct {
	label string
	kind  fieldKind
	input textinput.Model
}

// form is the search form of one domain.
type form struct {
	domain domain.Domain
	fields []field
	focus  int
}

func newInput(placeholder, value string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.SetValue(value)
	return in
}

func newForm(d domain.Domain) *form {
	f := &form{domain: d}
	switch d {
	case domain.Flights:
		f.fields = []field{
			{label: "From", kind: fieldAirport, input: newInput("city or airport code", "", 64)},
			{label: "To", kind: fieldAirport, input: newInput("city or airport code", "", 64)},
			{label: "Depart", input: newInput("YYYY-MM-DD", "", 10)},
			{label: "Return", input: newInput("YYYY-MM-DD", "", 10)},
			{label: "Travellers", input: newInput("1-8", "1", 1)},
		}
	case domain.Itinerary:
		f.fields = []field{
			{label: "City", kind: fieldCity, input: newInput("destination city", "", 64)},
			{label: "Radius km", input: newInput("1-20", "5", 2)},
			{label: "Activities", input: newInput("1-10", "5", 2)},
		}
	case domain.Weather:
		f.fields = []field{
			{label: "City", kind: fieldCity, input: newInput("destination city", "", 64)},
			{label: "Country", input: newInput("two-letter code, blank to look up", "", 2)},
		}
	}
	f.fields[0].input.Focus()
	return f
}

func (f *form) focused() *field {
	return &f.fields[f.focus]
}

// move shifts focus by delta, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	n := len(f.fields)
	f.focus = ((f.focus+delta)%n + n) % n
	return f.fields[f.focus].input.Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) set(i int, v string) {
	f.fields[i].input.SetValue(v)
}

// suggestions lists picker labels for the focused field.
func (f *form) suggestions(t *airports.Table) []string {
	fld := f.focused()
	query := stripLabel(fld.input.Value())
	if query == "" {
		return nil
	}
	var labels []string
	switch fld.kind {
	case fieldAirport:
		for _, opt := range t.Options(query) {
			labels = append(labels, opt.FullLabel)
		}
	case fieldCity:
		for _, c := range t.Cities(query) {
			labels = append(labels, c.Label())
		}
	}
	if len(labels) > maxSuggestions {
		labels = labels[:maxSuggestions]
	}
	return labels
}

// query builds the typed request from the field values. Unresolvable
// locations are left empty so validation reports them.
func (f *form) query(t *airports.Table) domain.Query {
	switch f.domain {
	case domain.Flights:
		src, _ := t.ResolveCode(stripLabel(f.value(0)))
		dst, _ := t.ResolveCode(stripLabel(f.value(1)))
		return domain.FlightQuery{
			Source:        src,
			Destination:   dst,
			DepartDate:    f.value(2),
			ReturnDate:    f.value(3),
			NumTravellers: atoi(f.value(4)),
		}
	case domain.Itinerary:
		return domain.ItineraryQuery{
			City:   cityName(t, f.value(0)),
			Radius: atoi(f.value(1)),
			Limit:  atoi(f.value(2)),
		}
	case domain.Weather:
		city := cityName(t, f.value(0))
		country := strings.ToUpper(f.value(1))
		if country == "" {
			if c, ok := t.Lookup(city); ok {
				country = c.CountryCode
			}
		}
		return domain.WeatherQuery{City: city, CountryCode: country}
	}
	return nil
}

// stripLabel reduces a picker label such as "LHR (London, United Kingdom)"
// to its leading name or code.
func stripLabel(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.Index(v, " ("); i > 0 {
		return v[:i]
	}
	return v
}

func cityName(t *airports.Table, v string) string {
	v = stripLabel(v)
	if c, ok := t.Lookup(v); ok {
		return c.City
	}
	return v
}

// atoi maps unparsable input to zero, which validation rejects.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
