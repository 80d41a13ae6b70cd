package format

import (
	"fmt"
	"io"

	"github.com/tether-travel/tether/internal/domain"
)

// Weather writes a weather report as plain text.
func Weather(report *domain.WeatherReport, writer io.Writer) error {
	if report == nil {
		return nil
	}
	c := report.Current
	if _, err := fmt.Fprintf(writer, "%s, %s: %s (%s), %.1f°C, feels like %.1f°C\n",
		c.City, c.CountryCode, c.WeatherMain, c.WeatherDescription, c.Temperature, c.FeelsLike); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "humidity %.0f%%, wind %.1f m/s, clouds %.0f%%\n", c.Humidity, c.WindSpeed, c.Cloudiness); err != nil {
		return err
	}
	for _, day := range report.Forecast {
		if _, err := fmt.Fprintf(writer, "%-12s %6.1f° .. %5.1f°  rain %3.0f%%\n",
			day.Date, day.TemperatureMin, day.TemperatureMax, day.PrecipitationProbabilityMax); err != nil {
			return err
		}
	}
	return nil
}

// AirportOptions writes one picker label per line.
func AirportOptions(options []domain.AirportOption, writer io.Writer) error {
	for _, o := range options {
		line := o.FullLabel
		if o.AirportName != "" {
			line += "  " + o.AirportName
		}
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}

// Principal writes who is signed in.
func Principal(p *domain.Principal, writer io.Writer) error {
	if p == nil {
		_, err := fmt.Fprintln(writer, "not signed in")
		return err
	}
	if _, err := fmt.Fprintf(writer, "user id:   %s\n", p.UserID); err != nil {
		return err
	}
	if p.UserDetails != "" {
		if _, err := fmt.Fprintf(writer, "details:   %s\n", p.UserDetails); err != nil {
			return err
		}
	}
	if p.IdentityProvider != "" {
		if _, err := fmt.Fprintf(writer, "provider:  %s\n", p.IdentityProvider); err != nil {
			return err
		}
	}
	return nil
}
