package imaging

import (
	"errors"
	"strings"
)

var (
	// ErrImageMagickUnavailable ImageMagickが使用できません
	ErrImageMagickUnavailable = errors.New("imagemagick is unavailable")
	// ErrUnsupportedFormat この変換器では出力できない形式です
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrInvalidSVG SVGを解釈できません
	ErrInvalidSVG = errors.New("invalid svg")
	// ErrSizeLimitExceeded 出力サイズが上限を超えています
	ErrSizeLimitExceeded = errors.New("the image exceeds max size limit")
)

type Config struct {
	// ImageMagickPath ImageMagickの実行ファイルのパス。空の場合はプロセス内で変換します
	ImageMagickPath string
	// Concurrency 処理並列数
	Concurrency int
	// MaxSize 出力可能な最大の一辺の画素数
	MaxSize int
	// BlurHash ラスター画像のBlurHashを計算するかどうか
	BlurHash bool
}

// Format 出力形式
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat 形式名を解釈します。空文字列はSVGです
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatSVG, true
	case FormatSVG, FormatPNG, FormatWebP:
		return f, true
	default:
		return FormatSVG, false
	}
}

// Raster ラスター形式かどうか
func (f Format) Raster() bool {
	return f == FormatPNG || f == FormatWebP
}

// ContentType MIMEタイプ
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	default:
		return "image/svg+xml"
	}
}

// Ext 拡張子
func (f Format) Ext() string {
	if f == "" {
		return string(FormatSVG)
	}
	return string(f)
}
