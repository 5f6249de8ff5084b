package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/observability"
	"ulascansenturk/weather-lookup/internal/providers"
	"ulascansenturk/weather-lookup/internal/service"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
	router         *mux.Router
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	h := &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}

	router := mux.NewRouter()
	router.Use(requestLogger)

	router.HandleFunc("/weather", h.GetWeather).Methods(http.MethodGet)
	router.HandleFunc("/weather/coordinates", h.GetWeatherByCoordinates).Methods(http.MethodGet)
	router.HandleFunc("/weather/current", h.GetCurrentWeather).Methods(http.MethodGet)
	router.HandleFunc("/history", h.GetHistory).Methods(http.MethodGet)
	router.HandleFunc("/preferences/unit", h.GetUnitPreference).Methods(http.MethodGet)
	router.HandleFunc("/preferences/unit", h.UpdateUnitPreference).Methods(http.MethodPut)
	router.Handle("/metrics", observability.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	h.router = router
	return h
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("q")
	if location == "" {
		respondWithError(w, http.StatusBadRequest, "location parameter 'q' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.weatherService.Search(ctx, location)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("location", location).Msg("failed to get weather data")
		respondWithLookupError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toWeatherResponse(view))
}

func (h *WeatherHandler) GetWeatherByCoordinates(w http.ResponseWriter, r *http.Request) {
	latitude, err := parseCoordinate(r.URL.Query().Get("lat"), 90)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "parameter 'lat' must be a number between -90 and 90")
		return
	}
	longitude, err := parseCoordinate(r.URL.Query().Get("lon"), 180)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "parameter 'lon' must be a number between -180 and 180")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.weatherService.SearchCoordinates(ctx, latitude, longitude)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).
			Float64("lat", latitude).
			Float64("lon", longitude).
			Msg("failed to get weather data for coordinates")
		respondWithLookupError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toWeatherResponse(view))
}

func (h *WeatherHandler) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	view, err := h.weatherService.Current(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoWeather) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, toWeatherResponse(view))
}

// respondWithLookupError keeps the client-facing answer to "no data" for
// every provider failure; the kind only shows up in logs and metrics.
func respondWithLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, providers.ErrInvalidQuery):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSearchCanceled):
		respondWithError(w, http.StatusConflict, "search was replaced by a newer search")
	case errors.Is(err, context.DeadlineExceeded):
		respondWithError(w, http.StatusGatewayTimeout, "no weather data available: request timed out")
	default:
		respondWithError(w, http.StatusBadGateway, "no weather data available")
	}
}

func parseCoordinate(raw string, limit float64) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if value < -limit || value > limit {
		return 0, strconv.ErrRange
	}
	return value, nil
}

func toWeatherResponse(view service.WeatherView) WeatherResponse {
	return WeatherResponse{
		Lines:      view.Lines,
		IconID:     view.IconID,
		Condition:  view.Condition,
		Background: string(view.Background),
		Unit:       view.Unit,
	}
}
