package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RateLimiter abstracts the fixed-window counter (Redis in production).
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit gates a route by client IP. When the limiter itself fails
// the request is allowed through: availability wins over throttling for
// a store outage.
func RateLimit(limiter RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
