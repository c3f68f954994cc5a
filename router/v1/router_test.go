package v1

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/avatars/router/extension"
	"github.com/traPtitech/avatars/service/avatar"
	"github.com/traPtitech/avatars/service/imaging"
	"github.com/traPtitech/avatars/utils/storage"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	p := imaging.NewProcessor(imaging.Config{Concurrency: 2, MaxSize: 512})
	am, err := avatar.NewManager(avatar.Config{BlurHash: true}, storage.NewInMemoryFileStorage(), p, zap.NewNop())
	if err != nil {
		panic(err)
	}

	// テスト用サーバー作成
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(zap.NewNop())
	e.Use(extension.Wrap())

	handlers := &Handlers{
		AvatarManager: am,
		Imaging:       p,
		Logger:        zap.NewNop(),
		Config: Config{
			Version:  "version",
			Revision: "revision",
			MaxSize:  512,
		},
	}
	handlers.Setup(e.Group("/api"))
	server = httptest.NewServer(e)

	// テスト実行
	code := m.Run()

	// 後始末
	server.Close()
	os.Exit(code)
}

// R リクエストテスターを作成
func R(t *testing.T) *httpexpect.Expect {
	t.Helper()
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewCurlPrinter(t),
		},
		Client: &http.Client{
			Jar:     nil, // クッキーは保持しない
			Timeout: time.Second * 30,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse // リダイレクトを自動処理しない
			},
		},
	})
}
