package middleware

import (
	"time"

	"kala/config"
	"kala/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const limiterIdleExpiry = 3 * time.Minute

// NewUsernameRateLimiter throttles username availability checks per client IP.
func NewUsernameRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimit.UsernameChecksPerSecond),
		Burst:     cfg.RateLimit.Burst,
		ExpiresIn: limiterIdleExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.BadRequest(c, "INVALID_CLIENT", "Client address could not be determined")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.TooManyRequests(c, "Too many username checks, slow down")
		},
	})
}
