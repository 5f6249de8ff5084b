package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-lookup/internal/presentation"
	"ulascansenturk/weather-lookup/internal/providers"
)

type PresentationTestSuite struct {
	suite.Suite
	result providers.WeatherResult
}

func (s *PresentationTestSuite) SetupTest() {
	s.result = providers.WeatherResult{
		Location: providers.Location{
			Name:      "Toronto",
			Region:    "Ontario",
			Country:   "Canada",
			LocalTime: "2024-07-15 14:30",
		},
		Current: providers.Current{
			TempC:     20,
			TempF:     68,
			Condition: providers.Condition{Text: "Sunny", Code: 1000},
			WindKph:   13,
			WindMph:   8.1,
			Humidity:  64,
		},
	}
}

func (s *PresentationTestSuite) TestFormatDetailsCelsius() {
	details := presentation.FormatDetails(s.result, presentation.Celsius)

	s.Equal([]string{
		"Toronto, Ontario, Canada",
		"20.0°C",
		"Sunny",
		"13.0 kph (8.1 mph)",
		"64%",
	}, details.Lines)
	s.Equal("sun.max", details.IconID)
	s.Equal("Sunny", details.Condition)
}

func (s *PresentationTestSuite) TestFormatDetailsFahrenheit() {
	details := presentation.FormatDetails(s.result, presentation.Fahrenheit)

	s.Equal("68.0°F", details.Lines[1])
}

func (s *PresentationTestSuite) TestFormatDetailsSkipsEmptyRegion() {
	s.result.Location.Region = ""

	details := presentation.FormatDetails(s.result, presentation.Celsius)

	s.Equal("Toronto, Canada", details.Lines[0])
}

func (s *PresentationTestSuite) TestFormatDetailsKeepsFractionalDigits() {
	s.result.Current.TempC = -3.25

	details := presentation.FormatDetails(s.result, presentation.Celsius)

	s.Equal("-3.25°C", details.Lines[1])
}

func (s *PresentationTestSuite) TestFormatSummary() {
	s.result.Current.Condition = providers.Condition{Text: "Patchy rain possible", Code: 1063}

	summary := presentation.FormatSummary(s.result, presentation.Fahrenheit)

	s.Equal(presentation.Summary{
		Location:    "Toronto",
		Temperature: "68.0°F",
		Description: "Patchy rain possible",
		IconID:      "cloud.drizzle",
	}, summary)
}

func (s *PresentationTestSuite) TestIconForCode() {
	cases := map[int]string{
		1000: "sun.max",
		1003: "cloud.sun",
		1006: "cloud.sun",
		1030: "cloud.fog",
		1135: "cloud.fog",
		1087: "cloud.bolt",
		1183: "cloud.rain",
		1114: "snow",
		1201: "cloud.sleet",
		1222: "cloud.snow",
		1237: "cloud.hail",
		1264: "cloud.sun.rain",
		1276: "cloud.bolt.rain",
		1282: "cloud.bolt.snow",
		9999: "cloud",
		0:    "cloud",
	}

	for code, icon := range cases {
		s.Equal(icon, presentation.IconForCode(code), "code %d", code)
	}
}

func (s *PresentationTestSuite) TestConvertCelsiusString() {
	cases := map[string]string{
		"20.0°C":  "68.0°F",
		"20°C":    "68.0°F",
		"-40°C":   "-40.0°F",
		"36.6°C":  "97.9°F",
		" 0.0°C ": "32.0°F",
		"abc":     "abc",
		"°C":      "°C",
		"20.0°F":  "20.0°F",
		"":        "",
	}

	for input, want := range cases {
		s.Equal(want, presentation.ConvertCelsiusString(input), "input %q", input)
	}
}

func (s *PresentationTestSuite) TestConvertFahrenheitString() {
	cases := map[string]string{
		"68.0°F":  "20.0°C",
		"212°F":   "100.0°C",
		"-40.0°F": "-40.0°C",
		"abc":     "abc",
		"20.0°C":  "20.0°C",
	}

	for input, want := range cases {
		s.Equal(want, presentation.ConvertFahrenheitString(input), "input %q", input)
	}
}

func (s *PresentationTestSuite) TestLocalize() {
	s.Equal("68.0°F", presentation.Localize("20.0°C", presentation.Fahrenheit))
	s.Equal("68.0°F", presentation.Localize("68.0°F", presentation.Fahrenheit))
	s.Equal("20.0°C", presentation.Localize("68.0°F", presentation.Celsius))
	s.Equal("20.0°C", presentation.Localize("20.0°C", presentation.Celsius))
	s.Equal("n/a", presentation.Localize("n/a", presentation.Fahrenheit))
}

func (s *PresentationTestSuite) TestSelectBackground() {
	s.Equal(presentation.BackgroundDay, presentation.SelectBackground("2024-07-15 14:30", presentation.BackgroundNight))
	s.Equal(presentation.BackgroundNight, presentation.SelectBackground("2024-07-15 02:00", presentation.BackgroundDay))
	s.Equal(presentation.BackgroundDay, presentation.SelectBackground("2024-07-15 6:00", presentation.BackgroundNight))
	s.Equal(presentation.BackgroundNight, presentation.SelectBackground("2024-07-15 18:00", presentation.BackgroundDay))
	s.Equal(presentation.BackgroundDay, presentation.SelectBackground("2024-07-15 17:59", presentation.BackgroundNight))
}

func (s *PresentationTestSuite) TestSelectBackgroundMalformedKeepsCurrent() {
	for _, input := range []string{"", "2024-07-15", "2024-07-15 xx:30", "2024-07-15 1430", "a b c", "2024-07-15 25:00"} {
		s.Equal(presentation.BackgroundNight, presentation.SelectBackground(input, presentation.BackgroundNight), "input %q", input)
		s.Equal(presentation.BackgroundDay, presentation.SelectBackground(input, presentation.BackgroundDay), "input %q", input)
	}
}

func (s *PresentationTestSuite) TestUnitFromFlag() {
	s.Equal(presentation.Fahrenheit, presentation.UnitFromFlag(true))
	s.Equal(presentation.Celsius, presentation.UnitFromFlag(false))
	s.True(presentation.Fahrenheit.IsFahrenheit())
	s.Equal("°F", presentation.Fahrenheit.Suffix())
	s.Equal("celsius", presentation.Celsius.String())
}

func TestPresentationSuite(t *testing.T) {
	suite.Run(t, new(PresentationTestSuite))
}
