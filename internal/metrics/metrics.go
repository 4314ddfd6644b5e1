package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the calendar service.
//
// Each instance owns its registry, so several instances (tests, multiple
// calendars) never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	FeastCacheEvents *prometheus.CounterVec   // labels: event=hit|miss|bypass
	HolidayLookups   *prometheus.CounterVec   // labels: result=holiday|business_day|weekend
	CustomHolidays   *prometheus.CounterVec   // labels: source=api|import|replay
	HTTPDuration     *prometheus.HistogramVec // labels: method, route, status
	HTTPPanics       *prometheus.CounterVec   // labels: route
}

// New registers and returns all collectors, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FeastCacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "businessdays_feast_cache_events_total",
			Help: "Easter date cache events by type",
		}, []string{"event"}),
		HolidayLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "businessdays_day_lookups_total",
			Help: "Day classifications served, by result",
		}, []string{"result"}),
		CustomHolidays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "businessdays_custom_holidays_total",
			Help: "Custom holidays registered on the calendar, by source",
		}, []string{"source"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "businessdays_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "route", "status"}),
		HTTPPanics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "businessdays_http_panics_total",
			Help: "Panics recovered while serving requests",
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		m.FeastCacheEvents,
		m.HolidayLookups,
		m.CustomHolidays,
		m.HTTPDuration,
		m.HTTPPanics,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry (for tests and custom collectors).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hit, Miss and Bypass implement holiday.CacheObserver.
func (m *Metrics) Hit(int)    { m.FeastCacheEvents.WithLabelValues("hit").Inc() }
func (m *Metrics) Miss(int)   { m.FeastCacheEvents.WithLabelValues("miss").Inc() }
func (m *Metrics) Bypass(int) { m.FeastCacheEvents.WithLabelValues("bypass").Inc() }

// ObserveLookup counts one day classification.
func (m *Metrics) ObserveLookup(result string) {
	m.HolidayLookups.WithLabelValues(result).Inc()
}

// ObserveCustomHolidays counts n custom holidays registered from source.
func (m *Metrics) ObserveCustomHolidays(source string, n int) {
	m.CustomHolidays.WithLabelValues(source).Add(float64(n))
}

// ObserveHTTP records the latency of one request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.HTTPDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObservePanic counts one recovered panic.
func (m *Metrics) ObservePanic(route string) {
	if route == "" {
		route = "unmatched"
	}
	m.HTTPPanics.WithLabelValues(route).Inc()
}
