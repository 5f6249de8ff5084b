package handlers

import "time"

type WeatherResponse struct {
	Lines      []string `json:"lines"`
	IconID     string   `json:"icon_id"`
	Condition  string   `json:"condition"`
	Background string   `json:"background"`
	Unit       string   `json:"unit"`
}

type HistoryEntryResponse struct {
	ID         string    `json:"id"`
	Lines      []string  `json:"lines"`
	IconID     string    `json:"icon_id"`
	CapturedAt time.Time `json:"captured_at"`
}

type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

type UnitPreferenceRequest struct {
	Fahrenheit *bool `json:"fahrenheit"`
}

type UnitPreferenceResponse struct {
	Fahrenheit bool   `json:"fahrenheit"`
	Unit       string `json:"unit"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
