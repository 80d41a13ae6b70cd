package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SearchResult is one opaque item returned by a search. It is stored and
// replayed byte for byte; only views decode it.
type SearchResult = json.RawMessage

// ErrNoItemID is returned when a result carries no identifier for its domain.
var ErrNoItemID = errors.New("result has no item id")

// CacheState is the in-memory sequence held for one cacheable domain.
type CacheState struct {
	Domain Domain
	Items  []SearchResult
}

// Segment is one leg of a flight offer.
type Segment struct {
	NumPassengers      int    `json:"num_passengers"`
	DepartureTime      string `json:"departure_time"`
	DepartureDate      string `json:"departure_date"`
	ArrivalDate        string `json:"arrival_date"`
	ArrivalTime        string `json:"arrival_time"`
	Duration           string `json:"duration"`
	DepartureAirport   string `json:"departure_airport"`
	DestinationAirport string `json:"destination_airport"`
	AirlineCode        string `json:"airline_code"`
	FlightNumber       string `json:"flight_number"`
	UniqueID           string `json:"unique_id"`
}

type segmentWrapper struct {
	SegmentResponse Segment `json:"SegmentResponse"`
}

// FlightOffer is the decoded form of a flights result.
type FlightOffer struct {
	NumberOfSegments int
	FlightID         string
	Outbound         []Segment
	Inbound          []Segment
	PricePerPerson   string
}

type flightOfferWire struct {
	FlightResponse struct {
		NumberOfSegments int              `json:"number_of_segments"`
		FlightID         string           `json:"flight_id"`
		Outbound         []segmentWrapper `json:"outbound"`
		Inbound          []segmentWrapper `json:"inbound"`
		SegmentInfo      []segmentWrapper `json:"segment_info"`
		PricePerPerson   json.RawMessage  `json:"price_per_person"`
	} `json:"FlightResponse"`
}

// DecodeFlightOffer decodes a flights result for display.
func DecodeFlightOffer(r SearchResult) (FlightOffer, error) {
	var w flightOfferWire
	if err := json.Unmarshal(r, &w); err != nil {
		return FlightOffer{}, fmt.Errorf("decode flight offer: %w", err)
	}
	fr := w.FlightResponse
	offer := FlightOffer{
		NumberOfSegments: fr.NumberOfSegments,
		FlightID:         fr.FlightID,
		PricePerPerson:   scalarString(fr.PricePerPerson),
	}
	outbound := fr.Outbound
	if len(outbound) == 0 {
		// Search results list every leg under segment_info; saved offers
		// split them into outbound and inbound.
		outbound = fr.SegmentInfo
	}
	for _, s := range outbound {
		offer.Outbound = append(offer.Outbound, s.SegmentResponse)
	}
	for _, s := range fr.Inbound {
		offer.Inbound = append(offer.Inbound, s.SegmentResponse)
	}
	return offer, nil
}

// Route summarises the outbound journey as "LHR → JFK".
func (o FlightOffer) Route() string {
	if len(o.Outbound) == 0 {
		return ""
	}
	return o.Outbound[0].DepartureAirport + " → " + o.Outbound[len(o.Outbound)-1].DestinationAirport
}

// Activity is the decoded form of an itinerary result.
type Activity struct {
	City            string `json:"city"`
	ActivityID      string `json:"activity_id"`
	ActivityName    string `json:"activity_name"`
	ActivityDetails string `json:"activity_details"`
	PriceAmount     string `json:"price_amount"`
	PriceCurrency   string `json:"price_currency"`
	Pictures        string `json:"pictures"`
}

type activityWire struct {
	City            string          `json:"city"`
	ActivityID      json.RawMessage `json:"activity_id"`
	ActivityName    string          `json:"activity_name"`
	ActivityDetails string          `json:"activity_details"`
	PriceAmount     json.RawMessage `json:"price_amount"`
	PriceCurrency   string          `json:"price_currency"`
	Pictures        json.RawMessage `json:"pictures"`
}

// DecodeActivity decodes an itinerary result for display.
func DecodeActivity(r SearchResult) (Activity, error) {
	var w activityWire
	if err := json.Unmarshal(r, &w); err != nil {
		return Activity{}, fmt.Errorf("decode activity: %w", err)
	}
	return Activity{
		City:            w.City,
		ActivityID:      scalarString(w.ActivityID),
		ActivityName:    w.ActivityName,
		ActivityDetails: w.ActivityDetails,
		PriceAmount:     scalarString(w.PriceAmount),
		PriceCurrency:   w.PriceCurrency,
		Pictures:        scalarString(w.Pictures),
	}, nil
}

// ItemID extracts the identifier used to remove a saved item of d.
func ItemID(d Domain, r SearchResult) (string, error) {
	var id string
	switch d {
	case Flights:
		offer, err := DecodeFlightOffer(r)
		if err != nil {
			return "", err
		}
		id = offer.FlightID
	case Itinerary:
		act, err := DecodeActivity(r)
		if err != nil {
			return "", err
		}
		id = act.ActivityID
	default:
		return "", fmt.Errorf("%s items have no id", d)
	}
	if id == "" {
		return "", ErrNoItemID
	}
	return id, nil
}

// scalarString renders a JSON string, number or array of strings as text.
// The services are inconsistent about quoting prices and ids.
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) > 0 {
			return list[0]
		}
		return ""
	}
	return string(raw)
}
