package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/observability"
)

const DefaultBaseURL = "https://api.weatherapi.com/v1"

var (
	ErrInvalidQuery   = errors.New("invalid query")
	ErrNetworkFailure = errors.New("network failure")
	ErrDecodeFailure  = errors.New("decode failure")
)

type WeatherClient interface {
	Fetch(ctx context.Context, query string) (WeatherResult, error)
	GetHTTPClient() *http.Client
}

type weatherAPIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherAPIClient(apiKey, baseURL string, timeout time.Duration) WeatherClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &weatherAPIClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// CoordinatesQuery renders a device location as the "latitude,longitude"
// form accepted by the q parameter.
func CoordinatesQuery(latitude, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', -1, 64) + "," + strconv.FormatFloat(longitude, 'f', -1, 64)
}

// Fetch issues exactly one GET against current.json. It never retries.
func (c *weatherAPIClient) Fetch(ctx context.Context, query string) (WeatherResult, error) {
	requestURL, err := c.buildURL(query)
	if err != nil {
		return WeatherResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return WeatherResult{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		observability.ObserveProviderCall("network_error", time.Since(start))
		return WeatherResult{}, fmt.Errorf("%w: request failed: %w", ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	observability.ObserveProviderCall(statusLabel(resp.StatusCode), time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return WeatherResult{}, fmt.Errorf("%w: read response body: %w", ErrNetworkFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr weatherAPIError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return WeatherResult{}, fmt.Errorf("%w: provider error: %s (code %d)",
				ErrDecodeFailure, apiErr.Error.Message, apiErr.Error.Code)
		}
		return WeatherResult{}, fmt.Errorf("%w: provider returned status code: %d", ErrDecodeFailure, resp.StatusCode)
	}

	var apiResp weatherAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return WeatherResult{}, fmt.Errorf("%w: malformed JSON: %w", ErrDecodeFailure, err)
	}

	if apiResp.Location == nil || apiResp.Current == nil {
		return WeatherResult{}, fmt.Errorf("%w: response is missing location or current block", ErrDecodeFailure)
	}

	log.Debug().Str("query", query).Str("location", apiResp.Location.Name).Msg("weather fetched")

	return WeatherResult{
		Location: *apiResp.Location,
		Current:  *apiResp.Current,
	}, nil
}

func (c *weatherAPIClient) buildURL(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("%w: query cannot be empty", ErrInvalidQuery)
	}
	if !utf8.ValidString(query) {
		return "", fmt.Errorf("%w: query is not valid UTF-8", ErrInvalidQuery)
	}

	base, err := url.Parse(c.baseURL + "/current.json")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("%w: base URL %q is not absolute", ErrInvalidQuery, c.baseURL)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	base.RawQuery = params.Encode()

	return base.String(), nil
}

func (c *weatherAPIClient) GetHTTPClient() *http.Client {
	return c.client
}

func statusLabel(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "success"
	case statusCode >= 400 && statusCode < 500:
		return "client_error"
	case statusCode >= 500:
		return "server_error"
	default:
		return "error"
	}
}
