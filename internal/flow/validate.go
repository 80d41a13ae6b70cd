package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/tether-travel/tether/internal/domain"
)

const dateLayout = "2006-01-02"

// Validator wraps the go-playground validator with the planner's query rules.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a Validator with the cross-field rules registered.
// Location fields are tagged notblank so that input made of spaces counts
// as missing.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("flow: register notblank: %v", err))
	}
	v.RegisterStructValidation(flightDateOrder, domain.FlightQuery{})
	return &Validator{v: v}
}

// Query validates q. Failures are returned as a *Error of KindValidation
// carrying one message per problem.
func (val *Validator) Query(q domain.Query) error {
	if q == nil {
		return &Error{Kind: KindValidation, Op: "validate", Err: ErrInvalidInput, Messages: []string{msgInvalidQuery}}
	}
	err := val.v.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Kind: KindValidation, Op: "validate", Err: fmt.Errorf("%w: %v", ErrInvalidInput, err), Messages: []string{msgInvalidQuery}}
	}

	var messages []string
	seen := make(map[string]bool)
	for _, fe := range verrs {
		msg := fieldMessage(q.Domain(), fe)
		if !seen[msg] {
			seen[msg] = true
			messages = append(messages, msg)
		}
	}
	return &Error{Kind: KindValidation, Op: "validate", Err: fmt.Errorf("%w: %v", ErrInvalidInput, err), Messages: messages}
}

// flightDateOrder rejects a return date earlier than the departure date.
// Malformed dates are left to the datetime tag.
func flightDateOrder(sl validator.StructLevel) {
	q := sl.Current().Interface().(domain.FlightQuery)
	depart, err := time.Parse(dateLayout, q.DepartDate)
	if err != nil {
		return
	}
	ret, err := time.Parse(dateLayout, q.ReturnDate)
	if err != nil {
		return
	}
	if ret.Before(depart) {
		sl.ReportError(q.ReturnDate, "ReturnDate", "returnDate", "gtedepart", q.DepartDate)
	}
}

func fieldMessage(d domain.Domain, fe validator.FieldError) string {
	switch d {
	case domain.Flights:
		switch fe.StructField() {
		case "Source", "Destination":
			return msgSelectCities
		case "DepartDate", "ReturnDate":
			switch fe.Tag() {
			case "required":
				return msgSelectDates
			case "gtedepart":
				return msgReturnBefore
			default:
				return msgDateFormat
			}
		case "NumTravellers":
			return msgTravellers
		}
	case domain.Itinerary:
		switch fe.StructField() {
		case "City":
			return msgSelectCity
		case "Radius":
			return msgRadius
		case "Limit":
			return msgLimit
		}
	case domain.Weather:
		switch fe.StructField() {
		case "City":
			return msgSelectWeather
		case "CountryCode":
			if fe.Tag() == "required" {
				return msgSelectWeather
			}
			return msgInvalidCountry
		}
	}
	return msgInvalidQuery
}
