package middlewares

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/avatars/logging"
	"github.com/traPtitech/avatars/router/consts"
	"github.com/traPtitech/avatars/router/extension"
)

// AccessLogging アクセスログミドルウェア
func AccessLogging(logger *zap.Logger, dev bool) echo.MiddlewareFunc {
	if dev {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				start := time.Now()
				if err := next(c); err != nil {
					c.Error(err)
				}
				stop := time.Now()

				req := c.Request()
				res := c.Response()
				logger.Sugar().Infof("%3d | %s | %s %s %d", res.Status, stop.Sub(start), req.Method, req.URL, res.Size)
				return nil
			}
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.HasPrefix(c.Path(), "/api/ping") {
				return next(c)
			}

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			stop := time.Now()

			req := c.Request()
			res := c.Response()
			cache := res.Header().Get(consts.HeaderAvatarCache)
			fields := []zap.Field{
				zap.String("requestId", extension.GetRequestID(c)),
				logging.HTTPRequest(&logging.HTTPPayload{
					RequestMethod: req.Method,
					Status:        res.Status,
					UserAgent:     req.UserAgent(),
					RemoteIP:      c.RealIP(),
					Referer:       req.Referer(),
					Protocol:      req.Proto,
					RequestURL:    req.URL.String(),
					RequestSize:   req.ContentLength,
					ResponseSize:  res.Size,
					Latency:       stop.Sub(start),
					CacheLookup:   len(cache) > 0,
					CacheHit:      cache == "hit",
				}),
			}
			if p, ok := c.Get(consts.KeyRendered).(*logging.RenderPayload); ok {
				fields = append(fields, logging.Render(p))
			}
			logger.Info("", fields...)
			return nil
		}
	}
}
