package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry

	// Lookups by outcome: success, invalid_query, network_failure, decode_failure, canceled.
	LookupsTotal *prometheus.CounterVec

	// Provider calls by status label, with latency.
	ProviderCallsTotal   *prometheus.CounterVec
	ProviderCallDuration *prometheus.HistogramVec

	HistoryEntries prometheus.Gauge

	// Unit preference changes, labeled by the unit switched to.
	UnitChangesTotal *prometheus.CounterVec
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_lookups_total",
			Help: "Weather lookups by outcome",
		},
		[]string{"outcome"},
	)
	ProviderCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_provider_calls_total",
			Help: "Calls to the weather provider by status",
		},
		[]string{"status"},
	)
	ProviderCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_provider_call_duration_seconds",
			Help:    "Weather provider latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)
	HistoryEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "weather_history_entries",
			Help: "Entries currently held in the search history",
		},
	)
	UnitChangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_unit_changes_total",
			Help: "Unit preference changes by target unit",
		},
		[]string{"unit"},
	)

	registry.MustRegister(
		LookupsTotal,
		ProviderCallsTotal,
		ProviderCallDuration,
		HistoryEntries,
		UnitChangesTotal,
	)
}

func ObserveProviderCall(status string, elapsed time.Duration) {
	ProviderCallsTotal.WithLabelValues(status).Inc()
	ProviderCallDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
