package airports

import (
	"strings"

	"github.com/tether-travel/tether/internal/domain"
)

// Provider decides whether a city matches a picker query.
type Provider interface {
	Match(city domain.City, query string) bool
	Name() string
}

// MatchOptions configures a SubstringProvider.
type MatchOptions struct {
	CaseInsensitive bool
	// Fields to search: "city", "country", "code", "airports".
	Fields []string
}

// DefaultMatchOptions matches the city name only, ignoring case.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		CaseInsensitive: true,
		Fields:          []string{"city"},
	}
}

// MatchOption modifies MatchOptions.
type MatchOption func(*MatchOptions)

// WithCaseInsensitive sets case-insensitive matching.
func WithCaseInsensitive(enabled bool) MatchOption {
	return func(o *MatchOptions) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
func WithFields(fields ...string) MatchOption {
	return func(o *MatchOptions) {
		o.Fields = fields
	}
}

// SubstringProvider matches when any configured field contains the query.
type SubstringProvider struct {
	opts MatchOptions
}

// NewSubstringProvider creates a substring provider.
func NewSubstringProvider(opts ...MatchOption) *SubstringProvider {
	o := DefaultMatchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SubstringProvider{opts: o}
}

// Match reports whether city matches query. An empty query matches every city.
func (p *SubstringProvider) Match(city domain.City, query string) bool {
	if query == "" {
		return true
	}
	if p.opts.CaseInsensitive {
		query = strings.ToLower(query)
	}
	for _, field := range p.opts.Fields {
		for _, value := range fieldValues(city, field) {
			if value == "" {
				continue
			}
			if p.opts.CaseInsensitive {
				value = strings.ToLower(value)
			}
			if strings.Contains(value, query) {
				return true
			}
		}
	}
	return false
}

func (p *SubstringProvider) Name() string {
	return "substring"
}

func fieldValues(city domain.City, field string) []string {
	switch field {
	case "city":
		return []string{city.City}
	case "country":
		return []string{city.Country}
	case "code":
		return []string{city.Code}
	case "airports":
		return city.Airports
	default:
		return nil
	}
}
