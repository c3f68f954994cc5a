// Package avatar 名前文字列から決定的にアバター画像を生成します
package avatar

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/svg"
	"github.com/traPtitech/avatars/avatar/variants"
)

// Variant アバターのスタイル
type Variant int

const (
	Marble Variant = iota
	Beam
	Pixel
	Sunset
	Ring
	Bauhaus
	Fractal
	Mage
	Barcode
	Pepe
	Anime
)

var variantNames = [...]string{
	Marble:  "marble",
	Beam:    "beam",
	Pixel:   "pixel",
	Sunset:  "sunset",
	Ring:    "ring",
	Bauhaus: "bauhaus",
	Fractal: "fractal",
	Mage:    "mage",
	Barcode: "barcode",
	Pepe:    "pepe",
	Anime:   "anime",
}

// variantAliases 旧名
var variantAliases = map[string]Variant{
	"geometric": Beam,
	"abstract":  Bauhaus,
}

// String スタイル名
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return variantNames[Marble]
	}
	return variantNames[v]
}

// MarshalText implements encoding.TextMarshaler
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *Variant) UnmarshalText(text []byte) error {
	*v = ParseVariant(string(text))
	return nil
}

// Valid 定義済みのスタイルかどうか
func (v Variant) Valid() bool {
	return v >= 0 && int(v) < len(variantNames)
}

// Variants 全てのスタイルを定義順で返します
func Variants() []Variant {
	vs := make([]Variant, len(variantNames))
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// LookupVariant 名前からスタイルを探します。旧名も受け付けます
func LookupVariant(name string) (Variant, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range variantNames {
		if n == name {
			return Variant(i), true
		}
	}
	v, ok := variantAliases[name]
	return v, ok
}

// ParseVariant 名前からスタイルを返します。知らない名前の場合はMarbleを返します
func ParseVariant(name string) Variant {
	v, ok := LookupVariant(name)
	if !ok {
		return Marble
	}
	return v
}

func (v Variant) generator() variants.Generator {
	switch v {
	case Beam:
		return variants.Beam
	case Pixel:
		return variants.Pixel
	case Sunset:
		return variants.Sunset
	case Ring:
		return variants.Ring
	case Bauhaus:
		return variants.Bauhaus
	case Fractal:
		return variants.Fractal
	case Mage:
		return variants.Mage
	case Barcode:
		return variants.Barcode
	case Pepe:
		return variants.Pepe
	case Anime:
		return variants.Anime
	default:
		return variants.Marble
	}
}

const (
	// DefaultName 名前が指定されなかった場合の名前
	DefaultName = "Clara Barton"
	// DefaultSize 既定の出力サイズ
	DefaultSize = 80
)

// Options アバター生成のオプション
type Options struct {
	// Name 名前。NameSetがfalseの場合はDefaultNameを使います
	Name string
	// NameSet Nameが明示的に指定されたかどうか。空文字列の名前を区別するために使います
	NameSet bool
	Variant Variant
	// Colors パレット。空の場合はpalette.Defaultを使います
	Colors []string
	// Size 出力のwidth/height。0以下の場合はDefaultSizeを使います
	Size float64
	// Title 名前をtitle要素として埋め込むかどうか
	Title bool
	// Square trueの場合は角丸のマスクを掛けません
	Square bool
	// Endpoint 空でない場合は画像を生成せず、このエンドポイントへのURLを返します
	Endpoint string
}

// WithName Nameを設定したOptionsを返します
func (o Options) WithName(name string) Options {
	o.Name = name
	o.NameSet = true
	return o
}

// Normalize 既定値を適用したコピーを返します
func (o Options) Normalize() Options {
	if !o.NameSet && o.Name == "" {
		o.Name = DefaultName
	}
	o.NameSet = true
	if !o.Variant.Valid() {
		o.Variant = Marble
	}
	o.Colors = palette.Normalize(o.Colors)
	if !(o.Size > 0) {
		o.Size = DefaultSize
	}
	return o
}

// ParseSize 文字列のサイズを数値にします。解釈できないか0以下の場合はDefaultSizeを返します
func ParseSize(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px")), 64)
	if err != nil || !(f > 0) || f > 1e6 {
		return DefaultSize
	}
	return f
}

// Render アバターを生成します
func Render(o Options) *svg.Document {
	o = o.Normalize()
	return o.Variant.generator()(variants.Params{
		Name:   o.Name,
		Colors: o.Colors,
		Size:   o.Size,
		Title:  o.Title,
		Square: o.Square,
	})
}

// Image Sourceの結果。DocumentとURLのどちらか一方が設定されます
type Image struct {
	Document *svg.Document
	URL      string
}

// Source Endpointが設定されていればそのURLを、そうでなければ生成したアバターを返します
func Source(o Options) Image {
	if o.Endpoint != "" {
		return Image{URL: ImageURL(o.Endpoint, o)}
	}
	return Image{Document: Render(o)}
}

// ImageURL アバター画像を取得するURLを組み立てます
//
// パラメーターはname, variant, size, title, colorsの順で、colorsは先頭の#を除いてカンマで繋げます。
// squareはtrueの場合のみ付与します。
func ImageURL(endpoint string, o Options) string {
	o = o.Normalize()
	colors := lo.Map(o.Colors, func(c string, _ int) string { return strings.TrimPrefix(c, "#") })

	params := [][2]string{
		{"name", o.Name},
		{"variant", o.Variant.String()},
		{"size", geom.Num(o.Size)},
		{"title", strconv.FormatBool(o.Title)},
		{"colors", strings.Join(colors, ",")},
	}
	if o.Square {
		params = append(params, [2]string{"square", "true"})
	}

	var b strings.Builder
	b.WriteString(endpoint)
	if strings.Contains(endpoint, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}
