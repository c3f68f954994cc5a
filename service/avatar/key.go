package avatar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	engine "github.com/traPtitech/avatars/avatar"
	"github.com/traPtitech/avatars/service/imaging"
)

// request sc.Cacheのキー。Optionsを比較可能な形にしたもの
type request struct {
	name    string
	variant engine.Variant
	colors  string
	size    float64
	title   bool
	square  bool
	format  imaging.Format
}

const colorSep = "\x00"

func newRequest(o engine.Options, f imaging.Format) request {
	o = o.Normalize()
	return request{
		name:    o.Name,
		variant: o.Variant,
		colors:  strings.Join(o.Colors, colorSep),
		size:    o.Size,
		title:   o.Title,
		square:  o.Square,
		format:  f,
	}
}

func (r request) options() engine.Options {
	return engine.Options{
		Name:    r.name,
		NameSet: true,
		Variant: r.variant,
		Colors:  strings.Split(r.colors, colorSep),
		Size:    r.size,
		Title:   r.title,
		Square:  r.square,
	}
}

// digest 出力形式を含まないキャッシュキー
func (r request) digest() string {
	d := xxhash.New()
	for _, s := range []string{
		r.name,
		r.variant.String(),
		r.colors,
		strconv.FormatFloat(r.size, 'f', -1, 64),
		strconv.FormatBool(r.title),
		strconv.FormatBool(r.square),
	} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0xff})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

func (r request) storageKey() string {
	return r.digest() + "." + r.format.Ext()
}

// CacheKey 生成パラメーターのダイジェストを返します。出力形式は含みません
func CacheKey(o engine.Options) string {
	return newRequest(o, imaging.FormatSVG).digest()
}

// StorageKey ストレージに保存する際のキーを返します
func StorageKey(o engine.Options, f imaging.Format) string {
	return newRequest(o, f).storageKey()
}
