// Package palette アバターで使う色文字列の分類・選択・コントラスト計算
package palette

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// Kind 色文字列の書式
type Kind int

const (
	// KindOpaque 解釈しない文字列
	KindOpaque Kind = iota
	// KindHex #rgb, #rrggbb, #rrggbbaa
	KindHex
	// KindRGB rgb(), rgba()
	KindRGB
	// KindHSL hsl(), hsla()
	KindHSL
	// KindOklch oklch()
	KindOklch
	// KindCSSVariable var(--name)
	KindCSSVariable
)

func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindRGB:
		return "rgb"
	case KindHSL:
		return "hsl"
	case KindOklch:
		return "oklch"
	case KindCSSVariable:
		return "css-variable"
	default:
		return "opaque"
	}
}

const (
	// Black 明るい背景用の文字色
	Black = "#000000"
	// White 暗い背景用の文字色
	White = "#FFFFFF"

	foregroundSuffix = "-foreground"
)

var (
	hexRegex      = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	cssVarRegex   = regexp.MustCompile(`^var\(\s*(--[A-Za-z0-9_-]+)\s*(?:,[^)]*)?\)$`)
	rgbRegex      = regexp.MustCompile(`(?i)^rgba?\(\s*[^()]+\)$`)
	hslRegex      = regexp.MustCompile(`(?i)^hsla?\(\s*[^()]+\)$`)
	oklchRegex    = regexp.MustCompile(`(?i)^oklch\(\s*[^()]+\)$`)
	darkHintWords = []string{"foreground", "dark", "muted"}
)

// Default 既定のパレット
var Default = []string{"#92A1C6", "#146A7C", "#F0AB3D", "#C271B4", "#C20D90"}

// Shadcn `--primary`形式のCSS変数パレット
var Shadcn = []string{
	"var(--primary)",
	"var(--secondary)",
	"var(--accent)",
	"var(--muted)",
	"var(--destructive)",
}

// ShadcnColor `--color-primary`形式のCSS変数パレット
var ShadcnColor = []string{
	"var(--color-primary)",
	"var(--color-secondary)",
	"var(--color-accent)",
	"var(--color-muted)",
	"var(--color-destructive)",
}

// IsHex #rgb, #rrggbb, #rrggbbaa形式かどうか
func IsHex(c string) bool { return hexRegex.MatchString(c) }

// IsCSSVariable var(--name)形式かどうか
func IsCSSVariable(c string) bool { return cssVarRegex.MatchString(c) }

// IsRGBColor rgb()/rgba()形式かどうか
func IsRGBColor(c string) bool { return rgbRegex.MatchString(c) }

// IsHSLColor hsl()/hsla()形式かどうか
func IsHSLColor(c string) bool { return hslRegex.MatchString(c) }

// IsOklchColor oklch()形式かどうか
func IsOklchColor(c string) bool { return oklchRegex.MatchString(c) }

// WithHash #の無いhex色(ff0000等)に#を補います。それ以外はそのまま返します
func WithHash(c string) string {
	if !strings.HasPrefix(c, "#") && IsHex("#"+c) {
		return "#" + c
	}
	return c
}

// Classify 色文字列の書式を判定します
func Classify(c string) Kind {
	switch {
	case IsHex(c):
		return KindHex
	case IsCSSVariable(c):
		return KindCSSVariable
	case IsRGBColor(c):
		return KindRGB
	case IsHSLColor(c):
		return KindHSL
	case IsOklchColor(c):
		return KindOklch
	default:
		return KindOpaque
	}
}

// Contrast hex色の上に載せる文字色(#000000 or #FFFFFF)をYIQ輝度で返します
//
// 輝度が128以上の場合は黒を返します。解釈できない場合は白を返します。
func Contrast(hex string) string {
	r, g, b, ok := rgb255(hex)
	if !ok {
		return White
	}
	// (299R + 587G + 114B) / 1000 >= 128
	if 299*int(r)+587*int(g)+114*int(b) >= 128*1000 {
		return Black
	}
	return White
}

// ContrastSafe 任意の書式の色に対する文字色を返します
//
// var(--x)はvar(--x-foreground)に、既に-foregroundで終わる変数と
// rgb/hsl/oklch等の数値計算しない書式はfallback(省略時#000000)になります。
func ContrastSafe(c string, fallback ...string) string {
	fb := Black
	if len(fallback) > 0 && fallback[0] != "" {
		fb = fallback[0]
	}

	if m := cssVarRegex.FindStringSubmatch(c); m != nil {
		name := m[1]
		if strings.HasSuffix(name, foregroundSuffix) {
			return fb
		}
		return "var(" + name + foregroundSuffix + ")"
	}
	if IsHex(c) {
		return Contrast(c)
	}
	return fb
}

// Normalize 空の色を取り除き、何も残らなければDefaultのコピーを返します
func Normalize(colors []string) []string {
	cs := lo.FilterMap(colors, func(c string, _ int) (string, bool) {
		c = strings.TrimSpace(c)
		return c, c != ""
	})
	if len(cs) == 0 {
		return append([]string(nil), Default...)
	}
	return cs
}

// At palette[i]を返します。範囲外の場合は先頭の色を返します
func At(p []string, i int) string {
	if len(p) == 0 {
		return Default[0]
	}
	if i < 0 || i >= len(p) {
		return p[0]
	}
	return p[i]
}

// Darkest パレットの中で最も暗い色を返します
//
// "foreground", "dark", "muted"を含む色をこの順で優先し、無ければ
// hex色のR+G+Bが最小のものを選びます。hex色も無ければ先頭を返します。
func Darkest(p []string) string {
	if len(p) == 0 {
		return Default[0]
	}
	for _, word := range darkHintWords {
		if c, ok := lo.Find(p, func(c string) bool { return strings.Contains(strings.ToLower(c), word) }); ok {
			return c
		}
	}

	best, bestSum := "", 1<<30
	for _, c := range p {
		r, g, b, ok := rgb255(c)
		if !ok {
			continue
		}
		if sum := int(r) + int(g) + int(b); sum < bestSum {
			best, bestSum = c, sum
		}
	}
	if best == "" {
		return p[0]
	}
	return best
}

// Luma hex色のYIQ輝度(0-255)を返します。hex以外はfalse
func Luma(c string) (float64, bool) {
	r, g, b, ok := rgb255(c)
	if !ok {
		return 0, false
	}
	return float64(299*int(r)+587*int(g)+114*int(b)) / 1000, true
}

// rgb255 hex色をRGBに分解します。3桁は6桁に展開し、8桁のアルファは無視します
func rgb255(c string) (r, g, b uint8, ok bool) {
	if !IsHex(c) {
		return 0, 0, 0, false
	}
	switch len(c) {
	case 9:
		c = c[:7]
	case 4:
		c = "#" + strings.Repeat(c[1:2], 2) + strings.Repeat(c[2:3], 2) + strings.Repeat(c[3:4], 2)
	}
	col, err := colorful.Hex(c)
	if err != nil {
		return 0, 0, 0, false
	}
	r, g, b = col.RGB255()
	return r, g, b, true
}
