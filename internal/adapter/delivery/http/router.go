// Package http provides the HTTP delivery layer: link creation, redirects and
// the analytics endpoints, with their request validation and JSON responses.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/linkstats/pkg/middleware/recoverer"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options configures the optional parts of the router.
type Options struct {
	// BaseURL prefixes aliases in the short URLs returned to clients.
	BaseURL string
	// JWTSecret verifies bearer tokens on authenticated routes.
	JWTSecret []byte
	// Limiter throttles redirects per client IP. Nil disables throttling.
	Limiter rateLimiter
	// Metrics records request metrics and serves /metrics. Nil disables both.
	Metrics *Metrics
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the API.
func NewRouter(
	logger *httplog.Logger,
	linkUseCase linkUseCase,
	analyticsUseCase analyticsUseCase,
	opts Options,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer.New(logger.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	validate := newValidator()
	auth := authenticator(opts.JWTSecret)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/shorten", func(r chi.Router) {
			h := newLinkHandler(linkUseCase, validate, opts.BaseURL)

			r.With(auth).Post("/", h.shortenURL)

			r.Group(func(r chi.Router) {
				if opts.Limiter != nil {
					r.Use(rateLimit(opts.Limiter, logger.Logger))
				}

				r.Get("/{alias}", h.redirect)
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			h := newAnalyticsHandler(analyticsUseCase, opts.Metrics)

			r.With(auth).Get("/get/overall", h.getAccountAnalytics)
			r.Get("/topic/{topic}", h.getTopicAnalytics)
			r.Get("/{alias}", h.getAliasAnalytics)
		})
	})

	return r
}
