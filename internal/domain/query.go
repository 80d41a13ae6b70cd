package domain

import "strconv"

// Query is a search request for exactly one domain. The set of
// implementations is closed: FlightQuery, ItineraryQuery and WeatherQuery.
type Query interface {
	Domain() Domain
	// Body builds the domain-specific part of the request payload.
	Body() any
	sealed()
}

// FlightQuery searches round-trip flights between two city codes.
// Dates use the YYYY-MM-DD layout.
type FlightQuery struct {
	Source        string `json:"source" validate:"required,notblank"`
	Destination   string `json:"destination" validate:"required,notblank"`
	DepartDate    string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"returnDate" validate:"required,datetime=2006-01-02"`
	NumTravellers int    `json:"numTravellers" validate:"min=1,max=8"`
}

// MaxTravellers bounds FlightQuery.NumTravellers.
const MaxTravellers = 8

func (FlightQuery) Domain() Domain { return Flights }
func (FlightQuery) sealed()        {}

// Body sends the traveller count as a string, which is what the flight
// service expects.
func (q FlightQuery) Body() any {
	return map[string]string{
		"source":        q.Source,
		"destination":   q.Destination,
		"departureDate": q.DepartDate,
		"returnDate":    q.ReturnDate,
		"numTravellers": strconv.Itoa(q.NumTravellers),
	}
}

// ItineraryQuery searches points of interest around a city.
// Radius is in kilometres.
type ItineraryQuery struct {
	City   string `json:"city" validate:"required,notblank"`
	Radius int    `json:"radius" validate:"min=1,max=20"`
	Limit  int    `json:"limit" validate:"min=1,max=10"`
}

func (ItineraryQuery) Domain() Domain { return Itinerary }
func (ItineraryQuery) sealed()        {}

func (q ItineraryQuery) Body() any { return q }

// WeatherQuery requests the current weather and forecast for a city.
type WeatherQuery struct {
	City        string `json:"city" validate:"required,notblank"`
	CountryCode string `json:"country_code" validate:"required,len=2,alpha"`
}

func (WeatherQuery) Domain() Domain { return Weather }
func (WeatherQuery) sealed()        {}

func (q WeatherQuery) Body() any { return q }
