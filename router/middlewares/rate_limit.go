package middlewares

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/traPtitech/avatars/router/extension/herror"
)

// RateLimiter IPアドレスごとのレート制限ミドルウェア
func RateLimiter(limit rate.Limit, burst int, logger *zap.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			ok, err := store.Allow(ip)
			if err != nil {
				return herror.InternalServerError(err)
			}
			if !ok {
				logger.Warn("Exceeded rate limit.",
					zap.String("path", c.Path()),
					zap.String("ip", ip),
				)
				return echo.NewHTTPError(http.StatusTooManyRequests)
			}
			return next(c)
		}
	}
}
