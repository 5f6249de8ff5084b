package presentation

import (
	"fmt"
	"strings"

	"ulascansenturk/weather-lookup/internal/providers"
)

// Details is what the main screen renders for the current weather.
type Details struct {
	Lines     []string `json:"lines"`
	IconID    string   `json:"icon_id"`
	Condition string   `json:"condition"`
}

// Summary is the three-field snapshot kept in the search history.
type Summary struct {
	Location    string
	Temperature string
	Description string
	IconID      string
}

func FormatTemperature(result providers.WeatherResult, unit UnitPreference) string {
	value := result.Current.TempC
	if unit == Fahrenheit {
		value = result.Current.TempF
	}
	return formatNumber(value) + unit.Suffix()
}

// FormatDetails composes location, temperature, condition, wind and
// humidity lines.
func FormatDetails(result providers.WeatherResult, unit UnitPreference) Details {
	return Details{
		Lines: []string{
			locationLine(result.Location),
			FormatTemperature(result, unit),
			result.Current.Condition.Text,
			fmt.Sprintf("%s kph (%s mph)", formatNumber(result.Current.WindKph), formatNumber(result.Current.WindMph)),
			fmt.Sprintf("%d%%", result.Current.Humidity),
		},
		IconID:    IconForCode(result.Current.Condition.Code),
		Condition: result.Current.Condition.Text,
	}
}

func FormatSummary(result providers.WeatherResult, unit UnitPreference) Summary {
	return Summary{
		Location:    result.Location.Name,
		Temperature: FormatTemperature(result, unit),
		Description: result.Current.Condition.Text,
		IconID:      IconForCode(result.Current.Condition.Code),
	}
}

func locationLine(loc providers.Location) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{loc.Name, loc.Region, loc.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
