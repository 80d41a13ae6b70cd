package domain

// SearchResponse is a successful search round-trip. Results is set for
// cacheable domains and Weather for the weather domain.
type SearchResponse struct {
	UserID  string
	Domain  Domain
	Results []SearchResult
	Weather *WeatherReport
}

// WeatherReport is the weather service's answer for one city.
type WeatherReport struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
}

// CurrentWeather holds the current conditions. Units follow the weather service.
type CurrentWeather struct {
	City               string  `json:"city"`
	CountryCode        string  `json:"country_code"`
	WeatherMain        string  `json:"weather_main"`
	WeatherDescription string  `json:"weather_description"`
	WeatherIcon        string  `json:"weather_icon"`
	Temperature        float64 `json:"temperature"`
	FeelsLike          float64 `json:"feels_like"`
	Pressure           float64 `json:"pressure"`
	Humidity           float64 `json:"humidity"`
	WindSpeed          float64 `json:"wind_speed"`
	Cloudiness         float64 `json:"cloudiness"`
	Rain1h             float64 `json:"rain_1h"`
	Timestamp          string  `json:"timestamp"`
	Sunrise            string  `json:"sunrise"`
	Sunset             string  `json:"sunset"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
}

// ForecastDay is one day of the daily forecast.
type ForecastDay struct {
	Date                        string  `json:"date"`
	WeatherCode                 int     `json:"weather_code"`
	TemperatureMax              float64 `json:"temperature_max"`
	TemperatureMin              float64 `json:"temperature_min"`
	Sunrise                     string  `json:"sunrise"`
	Sunset                      string  `json:"sunset"`
	UVIndexMax                  float64 `json:"uv_index_max"`
	PrecipitationProbabilityMax float64 `json:"precipitation_probability_max"`
	WindSpeedMax                float64 `json:"wind_speed_max"`
}

// Ack acknowledges a save or remove request.
type Ack struct {
	UserID  string `json:"user_id"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// RetrieveResponse lists the items a user saved in one domain.
type RetrieveResponse struct {
	UserID string
	Domain Domain
	Items  []SearchResult
}

// IdentityMatches reports whether a response identity is acceptable for the
// caller. An empty response identity means the service did not echo one.
func IdentityMatches(responseUserID, callerID string) bool {
	return responseUserID == "" || responseUserID == callerID
}
