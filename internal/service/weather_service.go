package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/db/preference"
	"ulascansenturk/weather-lookup/internal/history"
	"ulascansenturk/weather-lookup/internal/observability"
	"ulascansenturk/weather-lookup/internal/presentation"
	"ulascansenturk/weather-lookup/internal/providers"
)

var (
	ErrNoWeather      = errors.New("no weather data, perform a search first")
	ErrNoHistory      = errors.New("no weather history, perform a search first")
	ErrSearchCanceled = errors.New("search canceled by a newer search")
)

// WeatherView is the rendered state of the main screen.
type WeatherView struct {
	presentation.Details
	Background presentation.Background `json:"background"`
	Unit       string                  `json:"unit"`
}

type WeatherService interface {
	Search(ctx context.Context, query string) (WeatherView, error)
	SearchCoordinates(ctx context.Context, latitude, longitude float64) (WeatherView, error)
	Current(ctx context.Context) (WeatherView, error)
	SetUnit(ctx context.Context, unit presentation.UnitPreference) (WeatherView, error)
	Unit(ctx context.Context) (presentation.UnitPreference, error)
	History(ctx context.Context) ([]history.Entry, error)
	Shutdown()
}

type weatherService struct {
	client      providers.WeatherClient
	preferences preference.Store
	history     history.Store
	searches    *searchTracker

	// mu serializes every write to the displayed state below and to history.
	mu         sync.Mutex
	current    *providers.WeatherResult
	details    presentation.Details
	background presentation.Background
}

// NewWeatherService wires the session. With cancelPrevious set, starting a
// search cancels any search still in flight; otherwise overlapping searches
// race and the last one to complete wins.
func NewWeatherService(
	client providers.WeatherClient,
	preferences preference.Store,
	historyStore history.Store,
	cancelPrevious bool,
) WeatherService {
	return &weatherService{
		client:      client,
		preferences: preferences,
		history:     historyStore,
		searches:    newSearchTracker(cancelPrevious),
		background:  presentation.BackgroundDay,
	}
}

func (s *weatherService) Search(ctx context.Context, query string) (WeatherView, error) {
	if strings.TrimSpace(query) == "" {
		observability.LookupsTotal.WithLabelValues("invalid_query").Inc()
		return WeatherView{}, fmt.Errorf("%w: location cannot be empty", providers.ErrInvalidQuery)
	}

	searchCtx, done := s.searches.begin(ctx)
	defer done()

	result, err := s.client.Fetch(searchCtx, query)
	if err != nil {
		if superseded(ctx, searchCtx) {
			err = fmt.Errorf("%w: %w", ErrSearchCanceled, err)
		}
		observability.LookupsTotal.WithLabelValues(outcome(err)).Inc()
		log.Error().Err(err).Str("query", query).Msg("failed to fetch weather data")
		return WeatherView{}, err
	}

	unit := s.unitOrDefault(ctx)
	details := presentation.FormatDetails(result, unit)
	entry := history.NewEntry(presentation.FormatSummary(result, unit))

	s.mu.Lock()
	if superseded(ctx, searchCtx) {
		s.mu.Unlock()
		observability.LookupsTotal.WithLabelValues("canceled").Inc()
		return WeatherView{}, ErrSearchCanceled
	}
	s.current = &result
	s.details = details
	s.background = presentation.SelectBackground(result.Location.LocalTime, s.background)
	s.history.Append(entry)
	view := s.viewLocked(unit)
	s.mu.Unlock()

	observability.HistoryEntries.Set(float64(s.history.Len()))
	observability.LookupsTotal.WithLabelValues("success").Inc()

	log.Info().
		Str("query", query).
		Str("location", result.Location.Name).
		Str("icon", details.IconID).
		Msg("weather lookup completed")

	return view, nil
}

func (s *weatherService) SearchCoordinates(ctx context.Context, latitude, longitude float64) (WeatherView, error) {
	return s.Search(ctx, providers.CoordinatesQuery(latitude, longitude))
}

func (s *weatherService) Current(ctx context.Context) (WeatherView, error) {
	unit := s.unitOrDefault(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return WeatherView{}, ErrNoWeather
	}

	s.details = presentation.FormatDetails(*s.current, unit)
	return s.viewLocked(unit), nil
}

func (s *weatherService) SetUnit(ctx context.Context, unit presentation.UnitPreference) (WeatherView, error) {
	if err := s.preferences.SetFahrenheit(ctx, unit.IsFahrenheit()); err != nil {
		return WeatherView{}, fmt.Errorf("failed to store unit preference: %w", err)
	}

	observability.UnitChangesTotal.WithLabelValues(unit.String()).Inc()

	view, err := s.Current(ctx)
	if errors.Is(err, ErrNoWeather) {
		return WeatherView{Unit: unit.String()}, nil
	}
	return view, err
}

func (s *weatherService) Unit(ctx context.Context) (presentation.UnitPreference, error) {
	isFahrenheit, err := s.preferences.IsFahrenheit(ctx)
	if err != nil {
		return presentation.Celsius, fmt.Errorf("failed to read unit preference: %w", err)
	}
	return presentation.UnitFromFlag(isFahrenheit), nil
}

// History returns every captured entry, oldest first, with temperatures
// re-expressed in the current unit. Stored entries are left untouched.
func (s *weatherService) History(ctx context.Context) ([]history.Entry, error) {
	entries := s.history.List()
	if len(entries) == 0 {
		return nil, ErrNoHistory
	}

	unit := s.unitOrDefault(ctx)

	localized := make([]history.Entry, len(entries))
	for i, entry := range entries {
		localized[i] = entry.Localized(unit)
	}
	return localized, nil
}

func (s *weatherService) Shutdown() {
	s.searches.shutdown()
}

func (s *weatherService) unitOrDefault(ctx context.Context) presentation.UnitPreference {
	unit, err := s.Unit(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to celsius")
	}
	return unit
}

func (s *weatherService) viewLocked(unit presentation.UnitPreference) WeatherView {
	return WeatherView{
		Details:    s.details,
		Background: s.background,
		Unit:       unit.String(),
	}
}

// superseded reports whether searchCtx was canceled by the tracker rather
// than by the caller.
func superseded(parent, searchCtx context.Context) bool {
	return searchCtx.Err() != nil && parent.Err() == nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrSearchCanceled), errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, providers.ErrInvalidQuery):
		return "invalid_query"
	case errors.Is(err, providers.ErrNetworkFailure):
		return "network_failure"
	case errors.Is(err, providers.ErrDecodeFailure):
		return "decode_failure"
	default:
		return "error"
	}
}
