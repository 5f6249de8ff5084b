package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/presentation"
)

func (h *WeatherHandler) GetUnitPreference(w http.ResponseWriter, r *http.Request) {
	unit, err := h.weatherService.Unit(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to read unit preference")
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, UnitPreferenceResponse{
		Fahrenheit: unit.IsFahrenheit(),
		Unit:       unit.String(),
	})
}

// UpdateUnitPreference stores the flag and answers with the current weather
// re-rendered in the new unit.
func (h *WeatherHandler) UpdateUnitPreference(w http.ResponseWriter, r *http.Request) {
	var req UnitPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Fahrenheit == nil {
		respondWithError(w, http.StatusBadRequest, "body must be a JSON object with a boolean 'fahrenheit' field")
		return
	}

	view, err := h.weatherService.SetUnit(r.Context(), presentation.UnitFromFlag(*req.Fahrenheit))
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to update unit preference")
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, toWeatherResponse(view))
}
