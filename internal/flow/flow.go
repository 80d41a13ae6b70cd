// Package flow orchestrates the user actions of the planner: searching,
// saving and removing items, and loading saved lists.
package flow

import (
	"context"

	"github.com/tether-travel/tether/internal/domain"
)

// Gateway is the remote travel gateway. Each call returns nil on failure.
type Gateway interface {
	Search(ctx context.Context, p *domain.Principal, q domain.Query) *domain.SearchResponse
	Save(ctx context.Context, p *domain.Principal, d domain.Domain, item domain.SearchResult) *domain.Ack
	Retrieve(ctx context.Context, p *domain.Principal, d domain.Domain) *domain.RetrieveResponse
	Remove(ctx context.Context, p *domain.Principal, d domain.Domain, itemID string) *domain.Ack
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Show(text string, kind domain.NotificationKind) domain.Notification
}

// Intent asks the view layer to move to the results of Domain.
type Intent struct {
	Domain domain.Domain
	// Weather carries the report for weather searches, which are not cached.
	Weather *domain.WeatherReport
}

// Navigator receives navigation intents.
type Navigator interface {
	Navigate(intent Intent)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(Intent)

func (f NavigatorFunc) Navigate(intent Intent) { f(intent) }

// User-visible messages.
const (
	msgSearchFailed    = "Failed to fetch travel results."
	msgSignInRequired  = "Please sign in to continue."
	msgSelectCities    = "Please select valid source and destination."
	msgSelectDates     = "Please select departure and return dates."
	msgDateFormat      = "Dates must use the YYYY-MM-DD format."
	msgReturnBefore    = "Return date cannot be before the departure date."
	msgTravellers      = "Number of travellers must be between 1 and 8."
	msgSelectCity      = "Please select a destination."
	msgRadius          = "Radius must be between 1 and 20 km."
	msgLimit           = "Number of activities must be between 1 and 10."
	msgSelectWeather   = "Please select destination."
	msgInvalidCountry  = "Country code must be two letters."
	msgInvalidQuery    = "Please check the search fields."
	msgUnsupportedItem = "This item cannot be saved."
)
