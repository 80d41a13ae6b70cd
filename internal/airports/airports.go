// Package airports holds the static city table and derives airport picker
// options from it.
package airports

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tether-travel/tether/internal/config"
	"github.com/tether-travel/tether/internal/domain"
)

//go:embed cities.json
var embeddedCities []byte

// Table is a loaded city table. It is read-only after loading.
type Table struct {
	cities   []domain.City
	provider Provider
}

// Parse decodes a city table in the cities.json format.
func Parse(data []byte) (*Table, error) {
	var cities []domain.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("airports: parse city table: %w", err)
	}
	return NewTable(cities), nil
}

// NewTable wraps an in-memory list of cities.
func NewTable(cities []domain.City) *Table {
	return &Table{cities: cities, provider: NewSubstringProvider()}
}

// Default returns the table compiled into the binary.
func Default() *Table {
	t, err := Parse(embeddedCities)
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads the table at path, or the built-in table when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("airports: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFromConfig loads the table named by cities_file.
func LoadFromConfig() (*Table, error) {
	return Load(config.Get("cities_file", ""))
}

// All returns every city in table order.
func (t *Table) All() []domain.City {
	out := make([]domain.City, len(t.cities))
	copy(out, t.cities)
	return out
}

// Cities returns the cities whose name contains query, in table order.
func (t *Table) Cities(query string) []domain.City {
	var out []domain.City
	for _, c := range t.cities {
		if t.provider.Match(c, query) {
			out = append(out, c)
		}
	}
	return out
}

// Options derives the airport options for query from this table.
func (t *Table) Options(query string) []domain.AirportOption {
	return optionsWith(t.provider, query, t.cities)
}

// Lookup finds a city by name, city code or airport code, ignoring case.
func (t *Table) Lookup(name string) (domain.City, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.City{}, false
	}
	for _, c := range t.cities {
		if strings.EqualFold(c.City, name) || strings.EqualFold(c.Label(), name) {
			return c, true
		}
	}
	for _, c := range t.cities {
		if strings.EqualFold(c.Code, name) {
			return c, true
		}
	}
	for _, c := range t.cities {
		for _, a := range c.Airports {
			if strings.EqualFold(a, name) {
				return c, true
			}
		}
	}
	return domain.City{}, false
}

// ResolveCode turns picker input into the location code sent in a flight
// search. A city name resolves to the city code; a code is kept as typed,
// upper-cased.
func (t *Table) ResolveCode(input string) (string, bool) {
	input = strings.TrimSpace(input)
	c, ok := t.Lookup(input)
	if !ok {
		return "", false
	}
	if strings.EqualFold(c.Code, input) {
		return c.Code, true
	}
	for _, a := range c.Airports {
		if strings.EqualFold(a, input) {
			return a, true
		}
	}
	return c.Code, true
}

// Options lists one option per airport of every city whose name contains
// query, ignoring case. Cities keep table order and airports keep city
// order. An empty query matches every city.
func Options(query string, cities []domain.City) []domain.AirportOption {
	return optionsWith(NewSubstringProvider(), query, cities)
}

func optionsWith(p Provider, query string, cities []domain.City) []domain.AirportOption {
	out := []domain.AirportOption{}
	for _, c := range cities {
		if !p.Match(c, query) {
			continue
		}
		for i, code := range c.Airports {
			var name string
			if i < len(c.AirportNames) {
				name = c.AirportNames[i]
			}
			out = append(out, domain.AirportOption{
				City:        c.City,
				Country:     c.Country,
				AirportCode: code,
				AirportName: name,
				FullLabel:   fmt.Sprintf("%s (%s, %s)", code, c.City, c.Country),
			})
		}
	}
	return out
}
