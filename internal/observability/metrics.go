// Package observability owns the Prometheus collectors exposed on /metrics.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trip_planner"

// AI call outcomes recorded by ObserveAI.
const (
	OutcomeOK          = "ok"
	OutcomeAuth        = "auth_required"
	OutcomeUpstream    = "upstream_error"
	OutcomeEmpty       = "empty_response"
	OutcomeBreakerOpen = "breaker_open"
)

// Metrics holds all collectors on a private registry, so tests can build as
// many as they like without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	AIRequests   *prometheus.CounterVec
	AIDuration   prometheus.Histogram
	BreakerState prometheus.Gauge

	SuggestionCacheHits   prometheus.Counter
	SuggestionCacheMisses prometheus.Counter
}

// New builds and registers every collector, plus the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_requests_total",
			Help:      "Generative-text calls by outcome.",
		}, []string{"outcome"}),
		AIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_request_duration_seconds",
			Help:      "Generative-text call duration in seconds, retries included.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		}),
		BreakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ai_breaker_state",
			Help:      "Circuit breaker state: 0 closed, 1 half-open, 2 open.",
		}),
		SuggestionCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestion_cache_hits_total",
			Help:      "Suggestion requests served from the cache.",
		}),
		SuggestionCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestion_cache_misses_total",
			Help:      "Suggestion requests that needed a generation call.",
		}),
	}

	m.registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.AIRequests,
		m.AIDuration,
		m.BreakerState,
		m.SuggestionCacheHits,
		m.SuggestionCacheMisses,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveAI records one finished generation call.
func (m *Metrics) ObserveAI(outcome string, d time.Duration) {
	m.AIRequests.WithLabelValues(outcome).Inc()
	m.AIDuration.Observe(d.Seconds())
}

// SetBreakerState records the breaker state as 0 closed, 1 half-open, 2 open.
func (m *Metrics) SetBreakerState(state int) {
	m.BreakerState.Set(float64(state))
}

// SuggestionCache counts a cache lookup.
func (m *Metrics) SuggestionCache(hit bool) {
	if hit {
		m.SuggestionCacheHits.Inc()
		return
	}
	m.SuggestionCacheMisses.Inc()
}

// Middleware counts and times requests by chi route pattern, so
// /stays/{stayId} is one series no matter how many stays exist.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
