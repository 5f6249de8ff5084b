package presentation

import (
	"fmt"
	"strconv"
	"strings"
)

type UnitPreference int

const (
	Celsius UnitPreference = iota
	Fahrenheit
)

const (
	celsiusSuffix    = "°C"
	fahrenheitSuffix = "°F"
)

// UnitFromFlag maps the persisted isFahrenheit flag to a unit.
func UnitFromFlag(isFahrenheit bool) UnitPreference {
	if isFahrenheit {
		return Fahrenheit
	}
	return Celsius
}

func (u UnitPreference) IsFahrenheit() bool {
	return u == Fahrenheit
}

func (u UnitPreference) Suffix() string {
	if u == Fahrenheit {
		return fahrenheitSuffix
	}
	return celsiusSuffix
}

func (u UnitPreference) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// ConvertCelsiusString turns "<number>°C" into "<number>°F" with one decimal.
// Anything that does not parse is returned unchanged.
func ConvertCelsiusString(text string) string {
	celsius, ok := parseTemperature(text, celsiusSuffix)
	if !ok {
		return text
	}
	return fmt.Sprintf("%.1f", celsius*9/5+32) + fahrenheitSuffix
}

// ConvertFahrenheitString is the inverse of ConvertCelsiusString.
func ConvertFahrenheitString(text string) string {
	fahrenheit, ok := parseTemperature(text, fahrenheitSuffix)
	if !ok {
		return text
	}
	return fmt.Sprintf("%.1f", (fahrenheit-32)*5/9) + celsiusSuffix
}

// Localize re-expresses a stored temperature string in unit. Strings that
// are already in unit, or that do not parse, pass through.
func Localize(temperature string, unit UnitPreference) string {
	if unit == Fahrenheit {
		return ConvertCelsiusString(temperature)
	}
	return ConvertFahrenheitString(temperature)
}

func parseTemperature(text, suffix string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasSuffix(trimmed, suffix) {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(trimmed, suffix)), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// formatNumber renders v in its shortest form but always with a decimal
// point, so 20 prints as "20.0" and 15.25 as "15.25".
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
