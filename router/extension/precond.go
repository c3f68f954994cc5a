package extension

import (
	"fmt"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/cespare/xxhash/v2"
	jsonIter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/traPtitech/avatars/router/consts"
)

const weakPrefix = "W/"

// sortedJSON キーの順序を固定したjsoniter設定。同じ値は常に同じETagになります
var sortedJSON = jsonIter.Config{
	EscapeHTML:                    false,
	MarshalFloatWith6Digits:       true,
	ObjectFieldMustBeSimpleString: true,
	SortMapKeys:                   true,
}.Froze()

// parseETags If-None-Matchヘッダの値をエンティティタグの列に分解します
//
// 不正なタグ以降は無視します。"*"は単独の要素として返します。
func parseETags(header string) []string {
	var tags []string
	for rest := header; ; {
		rest = strings.TrimLeft(textproto.TrimString(rest), ",")
		rest = textproto.TrimString(rest)
		if rest == "" {
			return tags
		}
		if rest[0] == '*' {
			return append(tags, "*")
		}
		tag, remain, ok := cutETag(rest)
		if !ok {
			return tags
		}
		tags = append(tags, tag)
		rest = remain
	}
}

func cutETag(s string) (tag string, remain string, ok bool) {
	body := strings.TrimPrefix(s, weakPrefix)
	if len(body) < 2 || body[0] != '"' {
		return "", "", false
	}
	end := strings.IndexByte(body[1:], '"')
	if end < 0 {
		return "", "", false
	}
	n := len(s) - len(body) + end + 2
	return s[:n], s[n:], true
}

// weakEqual 弱い比較でタグが一致するかどうか
func weakEqual(a, b string) bool {
	return strings.TrimPrefix(a, weakPrefix) == strings.TrimPrefix(b, weakPrefix)
}

// IsNotModified リクエストのIf-None-Matchがレスポンスに設定済みのETagと一致するかどうかを返します
//
// GETとHEAD以外のメソッドでは常にfalseです。
func IsNotModified(c echo.Context) bool {
	if m := c.Request().Method; m != http.MethodGet && m != http.MethodHead {
		return false
	}
	current := c.Response().Header().Get(consts.HeaderETag)
	if current == "" {
		return false
	}
	return lo.ContainsBy(parseETags(c.Request().Header.Get(consts.HeaderIfNoneMatch)), func(tag string) bool {
		return tag == "*" || weakEqual(tag, current)
	})
}

func writeNotModified(c echo.Context) error {
	h := c.Response().Header()
	h.Del(echo.HeaderContentType)
	h.Del(echo.HeaderContentLength)
	return c.NoContent(http.StatusNotModified)
}

// ServeJSONWithETag Etagを付与してJSONを返します。304を返せるときは304を返します。
func ServeJSONWithETag(c echo.Context, i interface{}) error {
	var (
		b   []byte
		err error
	)
	if _, pretty := c.QueryParams()["pretty"]; pretty {
		b, err = sortedJSON.MarshalIndent(i, "", "  ")
	} else {
		b, err = sortedJSON.Marshal(i)
	}
	if err != nil {
		return err
	}
	return ServeWithETag(c, echo.MIMEApplicationJSON, "", b)
}

// ServeWithETag Etagを付与して返します。304を返せるときは304を返します。
//
// eTagは引用符付きで渡します。空の場合は内容のハッシュから生成します。
func ServeWithETag(c echo.Context, contentType, eTag string, b []byte) error {
	if eTag == "" {
		eTag = fmt.Sprintf(`"%016x"`, xxhash.Sum64(b))
	}
	c.Response().Header().Set(consts.HeaderETag, eTag)

	if IsNotModified(c) {
		return writeNotModified(c)
	}
	return c.Blob(http.StatusOK, contentType, b)
}
