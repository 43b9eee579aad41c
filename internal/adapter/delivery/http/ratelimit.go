package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/vadimbarashkov/linkstats/pkg/response"
)

type rateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// rateLimit rejects requests over the limiter's quota with 429.
// Requests pass through when the limiter itself fails.
func rateLimit(limiter rateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	const op = "adapter.delivery.http.rateLimit"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := limiter.Allow(r.Context(), "ip:"+clientIP(r))
			if err != nil {
				logger.Warn("rate limiter unavailable", slog.String("op", op), slog.Any("err", err))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.TooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
