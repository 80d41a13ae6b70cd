package format

import (
	"strconv"

	"github.com/tether-travel/tether/internal/domain"
)

// Row is the display form of one result. Fields a domain does not have are
// left empty.
type Row struct {
	Index   int
	ID      string
	Summary string
	Depart  string
	Return  string
	Legs    string
	Price   string
	City    string
}

// NewRow decodes item of domain d for display. index is 1-based.
func NewRow(d domain.Domain, index int, item domain.SearchResult) Row {
	row := Row{Index: index}
	switch d {
	case domain.Flights:
		offer, err := domain.DecodeFlightOffer(item)
		if err != nil {
			row.Summary = "(unreadable flight)"
			return row
		}
		row.ID = offer.FlightID
		row.Summary = offer.Route()
		row.Price = offer.PricePerPerson
		if len(offer.Outbound) > 0 {
			row.Depart = joinDateTime(offer.Outbound[0].DepartureDate, offer.Outbound[0].DepartureTime)
		}
		if len(offer.Inbound) > 0 {
			row.Return = joinDateTime(offer.Inbound[0].DepartureDate, offer.Inbound[0].DepartureTime)
		}
		legs := offer.NumberOfSegments
		if legs == 0 {
			legs = len(offer.Outbound) + len(offer.Inbound)
		}
		row.Legs = strconv.Itoa(legs)
	case domain.Itinerary:
		act, err := domain.DecodeActivity(item)
		if err != nil {
			row.Summary = "(unreadable activity)"
			return row
		}
		row.ID = act.ActivityID
		row.Summary = act.ActivityName
		row.City = act.City
		row.Price = act.PriceAmount
		if act.PriceCurrency != "" && act.PriceAmount != "" {
			row.Price += " " + act.PriceCurrency
		}
	}
	return row
}

func joinDateTime(date, clock string) string {
	switch {
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		return date + " " + clock
	}
}
