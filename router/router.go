package router

import (
	"net/http"
	"sync"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/traPtitech/avatars/router/consts"
	"github.com/traPtitech/avatars/router/extension"
	"github.com/traPtitech/avatars/router/middlewares"
	v1 "github.com/traPtitech/avatars/router/v1"
	"github.com/traPtitech/avatars/service/avatar"
	"github.com/traPtitech/avatars/service/imaging"
)

// prometheusMiddleware コレクターはデフォルトレジストリに一度だけ登録します
var prometheusMiddleware = sync.OnceValue(func() echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware("avatars")
})

type Router struct {
	e  *echo.Echo
	v1 *v1.Handlers
}

// Setup APIサーバーのルーティングを行います
func Setup(am avatar.Manager, p imaging.Processor, logger *zap.Logger, config *Config) *echo.Echo {
	r := newRouter(am, p, logger.Named("router"), config)

	api := r.e.Group("/api")
	api.GET("/metrics", echoprometheus.NewHandler())
	api.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })
	r.v1.Setup(api)

	return r.e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger))
	if config.Gzipped {
		e.Use(middlewares.Gzip())
	}
	if config.RateLimit > 0 {
		e.Use(middlewares.RateLimiter(rate.Limit(config.RateLimit), max(config.RateBurst, 1), logger.Named("rate_limit")))
	}
	e.Use(extension.Wrap())
	e.Use(middlewares.RequestCounter())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		ExposeHeaders: []string{
			consts.HeaderVersion,
			consts.HeaderAvatarCache,
			consts.HeaderAvatarFallback,
			consts.HeaderAvatarBlurHash,
			consts.HeaderAvatarKey,
			consts.HeaderETag,
			echo.HeaderXRequestID,
		},
		MaxAge: 3600,
	}))
	e.Use(prometheusMiddleware())

	return e
}

func provideV1Config(c *Config) v1.Config {
	return v1.Config{
		Version:  c.Version,
		Revision: c.Revision,
		MaxSize:  c.MaxSize,
	}
}
