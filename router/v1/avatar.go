package v1

import (
	"net/http"
	"strings"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	engine "github.com/traPtitech/avatars/avatar"
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/logging"
	"github.com/traPtitech/avatars/router/consts"
	"github.com/traPtitech/avatars/router/extension"
	"github.com/traPtitech/avatars/router/extension/herror"
	"github.com/traPtitech/avatars/service/imaging"
)

// maxColors 1リクエストで指定できる色の数の上限
const maxColors = 32

// avatarRequest アバター取得リクエスト
type avatarRequest struct {
	Name    string
	NameSet bool
	Variant string
	Size    string
	Title   string
	Square  string
	Colors  []string
	Format  string

	maxSize int
}

func (r avatarRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Size, vd.By(sizeRule(r.maxSize))),
		vd.Field(&r.Format, vd.By(formatRule)),
		vd.Field(&r.Colors, vd.Length(0, maxColors)),
		vd.Field(&r.Name, vd.RuneLength(0, 1024)),
	)
}

func (r avatarRequest) options() engine.Options {
	o := engine.Options{
		Variant: engine.ParseVariant(r.Variant),
		Colors:  r.Colors,
		Size:    engine.ParseSize(r.Size),
		Title:   isTrue(r.Title),
		Square:  isTrue(r.Square),
	}
	if r.NameSet {
		return o.WithName(r.Name)
	}
	return o
}

func (r avatarRequest) format() imaging.Format {
	f, _ := imaging.ParseFormat(r.Format)
	return f
}

// GetAvatar GET /avatar
func (h *Handlers) GetAvatar(c echo.Context) error {
	q := c.QueryParams()
	_, nameSet := q["name"]
	req := avatarRequest{
		Name:    q.Get("name"),
		NameSet: nameSet,
		Variant: q.Get("variant"),
		Size:    q.Get("size"),
		Title:   q.Get("title"),
		Square:  q.Get("square"),
		Colors:  parseColors(q.Get("colors")),
		Format:  q.Get("format"),
		maxSize: h.MaxSize,
	}
	return h.serveAvatar(c, req)
}

// GetAvatarByPath GET /avatar/:variant/:size/:name
func (h *Handlers) GetAvatarByPath(c echo.Context) error {
	q := c.QueryParams()
	req := avatarRequest{
		Name:    c.Param(consts.ParamName),
		NameSet: true,
		Variant: c.Param(consts.ParamVariant),
		Size:    c.Param(consts.ParamSize),
		Title:   q.Get("title"),
		Square:  q.Get("square"),
		Colors:  parseColors(q.Get("colors")),
		Format:  q.Get("format"),
		maxSize: h.MaxSize,
	}
	return h.serveAvatar(c, req)
}

func (h *Handlers) serveAvatar(c echo.Context, req avatarRequest) error {
	if err := req.Validate(); err != nil {
		return herror.BadRequest(err)
	}

	o := req.options()
	f := req.format()
	r, err := h.AvatarManager.Render(c.Request().Context(), o, f)
	if err != nil {
		return herror.InternalServerError(err)
	}

	header := c.Response().Header()
	header.Set(consts.HeaderAvatarKey, r.Key)
	if r.Cached {
		header.Set(consts.HeaderAvatarCache, "hit")
	} else {
		header.Set(consts.HeaderAvatarCache, "miss")
	}
	if r.Fallback {
		header.Set(consts.HeaderAvatarFallback, "true")
		header.Set(consts.HeaderCacheControl, "no-cache")
	} else {
		header.Set(consts.HeaderCacheControl, "public, max-age=31536000, immutable")
	}
	if len(r.BlurHash) > 0 {
		header.Set(consts.HeaderAvatarBlurHash, r.BlurHash)
	}
	c.Set(consts.KeyRendered, &logging.RenderPayload{
		Variant:  o.Variant.String(),
		Format:   string(r.Format),
		Key:      r.Key,
		Cached:   r.Cached,
		Fallback: r.Fallback,
	})

	return extension.ServeWithETag(c, r.ContentType, r.ETag, r.Data)
}

// parseColors カンマ区切りの色を分割します。#の無いhex色には#を補います
func parseColors(s string) []string {
	if len(strings.TrimSpace(s)) == 0 {
		return nil
	}
	return lo.FilterMap(strings.Split(s, ","), func(c string, _ int) (string, bool) {
		c = strings.TrimSpace(c)
		return palette.WithHash(c), c != ""
	})
}

// GetPalettes GET /palettes
func (h *Handlers) GetPalettes(c echo.Context) error {
	return extension.ServeJSONWithETag(c, echo.Map{
		"default":     palette.Default,
		"shadcn":      palette.Shadcn,
		"shadcnColor": palette.ShadcnColor,
	})
}

// GetVariants GET /variants
func (h *Handlers) GetVariants(c echo.Context) error {
	names := lo.Map(engine.Variants(), func(v engine.Variant, _ int) string { return v.String() })
	return extension.ServeJSONWithETag(c, names)
}

// ClassifyColor GET /colors/classify
func (h *Handlers) ClassifyColor(c echo.Context) error {
	color := strings.TrimSpace(c.QueryParam("color"))
	if err := vd.Validate(color, vd.Required, vd.RuneLength(1, 256)); err != nil {
		return herror.BadRequest("color: " + err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"color":    color,
		"kind":     palette.Classify(color).String(),
		"contrast": palette.ContrastSafe(color),
	})
}

// GetVersion GET /version
func (h *Handlers) GetVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"version":    h.Version,
		"revision":   h.Revision,
		"rasterizer": h.Imaging.Name(),
	})
}
