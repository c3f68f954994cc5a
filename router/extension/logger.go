package extension

import (
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
)

// GetRequestID リクエストIDを返します。リクエストに無い場合は新たに生成します
func GetRequestID(c echo.Context) string {
	if rid := c.Response().Header().Get(echo.HeaderXRequestID); len(rid) > 0 {
		return rid
	}
	if rid := c.Request().Header.Get(echo.HeaderXRequestID); len(rid) > 0 {
		return rid
	}
	return uuid.Must(uuid.NewV4()).String()
}
