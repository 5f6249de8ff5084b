package presentation

import (
	"strconv"
	"strings"
)

type Background string

const (
	BackgroundDay   Background = "day"
	BackgroundNight Background = "night"
)

// SelectBackground picks the day background when the hour of a
// "YYYY-MM-DD HH:MM" local time falls in [6,18). A malformed time keeps
// current.
func SelectBackground(localTime string, current Background) Background {
	parts := strings.Split(strings.TrimSpace(localTime), " ")
	if len(parts) != 2 {
		return current
	}

	hourText, _, found := strings.Cut(parts[1], ":")
	if !found {
		return current
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil || hour < 0 || hour > 23 {
		return current
	}

	if hour >= 6 && hour < 18 {
		return BackgroundDay
	}
	return BackgroundNight
}
