package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vadimbarashkov/linkstats/internal/entity"
)

// Metrics holds the Prometheus collectors of the HTTP layer.
type Metrics struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	analyticsRequests *prometheus.CounterVec
	handler           http.Handler
}

// NewMetrics creates the collectors and registers them in registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkstats_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "linkstats_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		analyticsRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkstats_analytics_requests_total",
				Help: "Total number of analytics summaries requested, by scope and result",
			},
			[]string{"scope", "result"},
		),
		handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.analyticsRequests)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

func (m *Metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) observeAnalytics(scope string, err error) {
	if m == nil {
		return
	}

	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, entity.ErrLinkNotFound):
		result = "not_found"
	case errors.Is(err, entity.ErrNoAnalyticsData):
		result = "no_data"
	default:
		result = "error"
	}

	m.analyticsRequests.WithLabelValues(scope, result).Inc()
}
