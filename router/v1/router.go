package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/avatars/service/avatar"
	"github.com/traPtitech/avatars/service/imaging"
)

// Handlers v1 APIハンドラ
type Handlers struct {
	AvatarManager avatar.Manager
	Imaging       imaging.Processor
	Logger        *zap.Logger
	Config
}

// Config v1 APIの設定
type Config struct {
	Version  string
	Revision string
	// MaxSize 指定可能な最大のサイズ
	MaxSize int
}

// readMethods 参照系APIで受け付けるメソッド
var readMethods = []string{http.MethodGet, http.MethodHead}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	api := e.Group("/v1")
	{
		apiAvatar := api.Group("/avatar")
		{
			apiAvatar.Match(readMethods, "", h.GetAvatar)
			apiAvatar.Match(readMethods, "/:variant/:size/:name", h.GetAvatarByPath)
		}
		api.Match(readMethods, "/palettes", h.GetPalettes)
		api.Match(readMethods, "/variants", h.GetVariants)
		api.Match(readMethods, "/colors/classify", h.ClassifyColor)
	}
	e.Match(readMethods, "/version", h.GetVersion)
}
