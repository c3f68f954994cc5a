package geom

import (
	"strings"

	"github.com/traPtitech/avatars/avatar/seed"
)

// Transform SVGのtransform属性ビルダー
type Transform struct {
	parts []string
}

// Translate translate(x y)を追加します
func (t Transform) Translate(x, y float64) Transform {
	return t.with("translate(" + Num(x) + " " + Num(y) + ")")
}

// Rotate rotate(deg cx cy)を追加します
func (t Transform) Rotate(deg, cx, cy float64) Transform {
	return t.with("rotate(" + Num(deg) + " " + Num(cx) + " " + Num(cy) + ")")
}

// Scale scale(s)を追加します
func (t Transform) Scale(s float64) Transform {
	return t.with("scale(" + Num(s) + ")")
}

// Empty 何も追加されていないかどうか
func (t Transform) Empty() bool { return len(t.parts) == 0 }

func (t Transform) String() string { return strings.Join(t.parts, " ") }

func (t Transform) with(s string) Transform {
	parts := make([]string, len(t.parts), len(t.parts)+1)
	copy(parts, t.parts)
	return Transform{parts: append(parts, s)}
}

// Jitter 要素ごとにずらした配置
type Jitter struct {
	TranslateX float64
	TranslateY float64
	Rotate     float64
	Scale      float64
}

// NewJitter seedと要素番号indexから、キャンバスsize上の配置を導出します
//
// 平行移動は±size/10未満、拡大率は1.2+(size/20未満)/10、回転は[0, 360)度です。
func NewJitter(n uint64, index int, size float64) Jitter {
	m := n * uint64(index+1)
	return Jitter{
		TranslateX: float64(seed.Unit(m, int(size/10), 1)),
		TranslateY: float64(seed.Unit(m, int(size/10), 2)),
		Rotate:     float64(seed.Unit(m, 360, 0)),
		Scale:      1.2 + float64(seed.Unit(m, int(size/20), 0))/10,
	}
}

// Transform キャンバス中心を軸にしたtranslate+rotate+scaleを返します
func (j Jitter) Transform(size float64) Transform {
	return Transform{}.
		Translate(j.TranslateX, j.TranslateY).
		Rotate(j.Rotate, size/2, size/2).
		Scale(j.Scale)
}
