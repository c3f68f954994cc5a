package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/avatars/router/consts"
	"github.com/traPtitech/avatars/service/avatar"
	"github.com/traPtitech/avatars/service/imaging"
	"github.com/traPtitech/avatars/utils/storage"
)

func setupServer(t *testing.T, c *Config) *httptest.Server {
	t.Helper()
	p := imaging.NewProcessor(imaging.Config{Concurrency: 1, MaxSize: 256})
	am, err := avatar.NewManager(avatar.Config{}, storage.NewInMemoryFileStorage(), p, zap.NewNop())
	require.NoError(t, err)

	s := httptest.NewServer(Setup(am, p, zap.NewNop(), c))
	t.Cleanup(s.Close)
	return s
}

func exp(t *testing.T, s *httptest.Server) *httpexpect.Expect {
	t.Helper()
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  s.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Client: &http.Client{
			Transport: &http.Transport{DisableCompression: true},
		},
	})
}

func TestSetup(t *testing.T) {
	t.Parallel()

	s := setupServer(t, &Config{
		Version:       "v1.2.3",
		Revision:      "abcdef",
		AccessLogging: true,
		Gzipped:       true,
		MaxSize:       256,
	})

	t.Run("ping", func(t *testing.T) {
		t.Parallel()
		res := exp(t, s).GET("/api/ping").Expect()
		res.Status(http.StatusOK)
		res.Body().IsEqual("OK")
		res.Header(consts.HeaderVersion).IsEqual("v1.2.3")
		res.Header(echo.HeaderXRequestID).NotEmpty()
	})

	t.Run("request id is echoed", func(t *testing.T) {
		t.Parallel()
		exp(t, s).GET("/api/ping").
			WithHeader(echo.HeaderXRequestID, "req-1").
			Expect().
			Header(echo.HeaderXRequestID).IsEqual("req-1")
	})

	t.Run("gzip svg", func(t *testing.T) {
		t.Parallel()
		exp(t, s).GET("/api/v1/avatar").
			WithQuery("name", "Alice").
			WithQuery("variant", "fractal").
			WithHeader("Accept-Encoding", "gzip").
			Expect().
			Status(http.StatusOK).
			Header("Content-Encoding").IsEqual("gzip")
	})

	t.Run("max size", func(t *testing.T) {
		t.Parallel()
		exp(t, s).GET("/api/v1/avatar").
			WithQuery("size", "257").
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("metrics", func(t *testing.T) {
		t.Parallel()
		exp(t, s).GET("/api/metrics").
			Expect().
			Status(http.StatusOK).
			Body().Contains("go_goroutines")
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()
		exp(t, s).GET("/api/version").
			Expect().
			Status(http.StatusOK).
			JSON().Object().Value("revision").IsEqual("abcdef")
	})

	t.Run("cors", func(t *testing.T) {
		t.Parallel()
		exp(t, s).GET("/api/v1/variants").
			WithHeader(echo.HeaderOrigin, "https://example.com").
			Expect().
			Status(http.StatusOK).
			Header(echo.HeaderAccessControlAllowOrigin).IsEqual("*")
	})
}

func TestSetup_RateLimit(t *testing.T) {
	t.Parallel()

	s := setupServer(t, &Config{Version: "test", RateLimit: 0.001, RateBurst: 2})
	e := exp(t, s)

	e.GET("/api/ping").Expect().Status(http.StatusOK)
	e.GET("/api/ping").Expect().Status(http.StatusOK)
	e.GET("/api/ping").Expect().Status(http.StatusTooManyRequests)
}
