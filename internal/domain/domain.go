// Package domain holds the travel planner's value types: the search domains,
// the typed request and response variants exchanged with the gateway, and the
// small records shared by the flows and views.
package domain

import (
	"fmt"
	"strings"
)

// Domain identifies one of the searchable areas of the planner.
type Domain string

const (
	Flights   Domain = "flights"
	Itinerary Domain = "itinerary"
	Weather   Domain = "weather"
)

// All lists every domain in display order.
var All = []Domain{Flights, Itinerary, Weather}

// ParseDomain converts user input to a Domain.
func ParseDomain(s string) (Domain, error) {
	switch d := Domain(strings.ToLower(strings.TrimSpace(s))); d {
	case Flights, Itinerary, Weather:
		return d, nil
	default:
		return "", fmt.Errorf("unknown domain %q: must be one of flights, itinerary, weather", s)
	}
}

// IsValid reports whether d is a known domain.
func (d Domain) IsValid() bool {
	switch d {
	case Flights, Itinerary, Weather:
		return true
	default:
		return false
	}
}

// Cacheable reports whether results of d are kept in a ResultCache.
// Weather reports are shown once and never persisted.
func (d Domain) Cacheable() bool {
	return d == Flights || d == Itinerary
}

// Savable reports whether items of d can be saved to and removed from the
// user's account.
func (d Domain) Savable() bool {
	return d.Cacheable()
}

// StorageKey returns the persistent store key holding the cached results of d.
func (d Domain) StorageKey() string {
	return string(d)
}

// IDField names the JSON field that identifies a saved item of d on the wire.
func (d Domain) IDField() string {
	switch d {
	case Flights:
		return "flight_id"
	case Itinerary:
		return "activity_id"
	default:
		return ""
	}
}

// Noun is the singular, human readable name used in messages.
func (d Domain) Noun() string {
	switch d {
	case Flights:
		return "flight"
	case Itinerary:
		return "activity"
	default:
		return string(d)
	}
}

func (d Domain) String() string {
	return string(d)
}
