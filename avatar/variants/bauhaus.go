package variants

import (
	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

const (
	bauhausSize     = 80
	bauhausElements = 4
)

type bauhausElement struct {
	color      string
	translateX float64
	translateY float64
	rotate     float64
}

// Bauhaus 背景・帯・円・線の4つの図形の組み合わせ
func Bauhaus(p Params) *svg.Document {
	f := newFrame(p, "bauhaus", bauhausSize)

	var els [bauhausElements]bauhausElement
	for i := range bauhausElements {
		m := f.n * uint64(i+1)
		rng := bauhausSize/2 - (i + 17)
		els[i] = bauhausElement{
			color:      f.color(f.n + uint64(i)),
			translateX: float64(seed.Unit(m, rng, 1)),
			translateY: float64(seed.Unit(m, rng, 2)),
			rotate:     float64(seed.Unit(m, 360, 0)),
		}
	}
	isSquare := seed.Boolean(f.n, 2)

	const mid = bauhausSize / 2
	barHeight := 10.0
	if isSquare {
		barHeight = bauhausSize
	}
	place := func(e bauhausElement, rotate bool) string {
		t := geom.Transform{}.Translate(e.translateX, e.translateY)
		if rotate {
			t = t.Rotate(e.rotate, mid, mid)
		}
		return t.String()
	}

	f.body(
		svg.Rect(0, 0, bauhausSize, bauhausSize, els[0].color),
		svg.Rect((bauhausSize-60)/2, (bauhausSize-20)/2, bauhausSize, barHeight, els[1].color,
			svg.A("transform", place(els[1], true)),
		).Labeled("bar"),
		svg.Circle(mid, mid, bauhausSize/5, els[2].color,
			svg.A("transform", place(els[2], false)),
		).Labeled("circle"),
		svg.El("line",
			svg.F("x1", 0), svg.F("y1", mid), svg.F("x2", bauhausSize), svg.F("y2", mid),
			svg.A("stroke-width", "2"),
			svg.A("stroke", els[3].color),
			svg.A("transform", place(els[3], true)),
		).Labeled("line"),
	)
	return f.doc
}
