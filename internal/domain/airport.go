package domain

// City is one entry of the static city table.
type City struct {
	City         string   `json:"city"`
	Country      string   `json:"country"`
	CountryCode  string   `json:"country_code"`
	Code         string   `json:"code"`
	Airports     []string `json:"airports"`
	AirportNames []string `json:"airport_names"`
}

// Label renders the city the way pickers show it.
func (c City) Label() string {
	return c.City + " (" + c.Country + ")"
}

// AirportOption is one airport of a matching city, ready for a picker.
type AirportOption struct {
	City        string
	Country     string
	AirportCode string
	AirportName string
	FullLabel   string
}
