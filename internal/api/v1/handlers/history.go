package handlers

import (
	"errors"
	"net/http"

	"ulascansenturk/weather-lookup/internal/service"
)

func (h *WeatherHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.weatherService.History(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoHistory) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := HistoryResponse{Entries: make([]HistoryEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		response.Entries = append(response.Entries, HistoryEntryResponse{
			ID:         entry.ID.String(),
			Lines:      entry.Lines(),
			IconID:     entry.IconID,
			CapturedAt: entry.CapturedAt,
		})
	}

	respondWithJSON(w, http.StatusOK, response)
}
