package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-lookup/internal/observability"
)

func TestObserveProviderCall(t *testing.T) {
	before := testutil.ToFloat64(observability.ProviderCallsTotal.WithLabelValues("success"))

	observability.ObserveProviderCall("success", 120*time.Millisecond)

	after := testutil.ToFloat64(observability.ProviderCallsTotal.WithLabelValues("success"))
	assert.Equal(t, before+1, after)
}

func TestHandlerExposesRegisteredMetrics(t *testing.T) {
	observability.LookupsTotal.WithLabelValues("success").Inc()
	observability.HistoryEntries.Set(3)

	recorder := httptest.NewRecorder()
	observability.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "weather_lookups_total")
	assert.Contains(t, string(body), "weather_history_entries 3")
	assert.Contains(t, string(body), "go_goroutines")
}
