package variants

import (
	"github.com/samber/lo"

	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

const pepeSize = 80

var (
	// pepeClassic 定番のカエルの緑と唇の赤
	pepeClassic = []string{"#4F8A3C", "#6BAA4B", "#C0392B", "#A93226"}
	// pepeFallbackSkins 肌の色が背景と被った時に使う色
	pepeFallbackSkins = []string{"#6BAA4B", "#8BC34A", "#F4D03F", "#E59866"}
	// pepeFallbackLips 唇の色が肌と被った時に使う色
	pepeFallbackLips = []string{"#C0392B", "#E74C3C", "#922B21", "#6C3483"}
)

type pepeMood int

const (
	pepeNeutral pepeMood = iota
	pepeMad
	pepeCrying
)

func (m pepeMood) String() string {
	switch m {
	case pepeMad:
		return "mad"
	case pepeCrying:
		return "crying"
	default:
		return "neutral"
	}
}

type pepeGlasses int

const (
	pepeNoGlasses pepeGlasses = iota
	pepeShutterShades
	pepeNerdGlasses
	pepeAviators
)

type pepePattern int

const (
	pepeNoPattern pepePattern = iota
	pepeVStripes
	pepeHStripes
	pepeDots
	pepeCheckerboard
	pepeDiagonal
)

type pepe struct {
	background  string
	skin        string
	lip         string
	patternInk  string
	mood        pepeMood
	glasses     pepeGlasses
	pattern     pepePattern
	patternSize float64
	gazeX       float64
	gazeY       float64
	tilt        float64
	mouthWidth  float64
}

func newPepe(f *frame) pepe {
	n := f.n
	pool := append(append([]string{}, f.colors...), pepeClassic...)
	weighted := append(append(append([]string{}, f.colors...), f.colors...), pepeClassic...)

	p := pepe{
		background: palette.Darkest(pool),
		skin:       weighted[seed.SpreadUnit(n+1, len(weighted), 0)],
		lip:        weighted[seed.SpreadUnit(n+2, len(weighted), 0)],
		gazeX:      seed.Between(n+6, -2.5, 2.5),
		gazeY:      seed.Between(n+14, -1, 1.5),
		tilt:       seed.Between(n+13, -6, 6),
		mouthWidth: seed.Between(n+12, 26, 34),
	}
	if p.skin == p.background || seed.Chance(n+3, 10) {
		p.skin = pepeFallbackSkins[seed.SpreadUnit(n+4, len(pepeFallbackSkins), 0)]
	}
	if p.lip == p.skin || p.lip == p.background {
		p.lip, _ = lo.Find(pepeFallbackLips, func(c string) bool { return c != p.skin && c != p.background })
	}

	switch r := seed.Roll(n + 5); {
	case r < 20:
		p.mood = pepeMad
	case r < 35:
		p.mood = pepeCrying
	default:
		p.mood = pepeNeutral
	}
	if seed.Chance(n+7, 25) {
		p.glasses = pepeGlasses(1 + seed.SpreadUnit(n+8, 3, 0))
	}
	if seed.Chance(n+9, 70) {
		p.pattern = pepePattern(1 + seed.SpreadUnit(n+10, 5, 0))
		p.patternSize = float64(6 + 2*seed.SpreadUnit(n+15, 4, 0))
		p.patternInk = f.distinct(n+11, p.background)
	}
	return p
}

// Pepe 手描き風のカエルの顔
func Pepe(p Params) *svg.Document {
	f := newFrame(p, "pepe", pepeSize)
	pp := newPepe(f)

	f.body(svg.Rect(0, 0, pepeSize, pepeSize, pp.background))
	if pp.pattern != pepeNoPattern {
		id := f.id("pattern")
		f.defs(pepeBackgroundPattern(id, pp))
		f.body(svg.Rect(0, 0, pepeSize, pepeSize, url(id), svg.A("opacity", "0.3")).Labeled("pattern"))
	}

	head := svg.Group(
		svg.A("transform", geom.Transform{}.Rotate(pp.tilt, 40, 48).String()),
		svg.A("data-mood", pp.mood.String()),
	).Labeled("head")
	head.Add(
		svg.Path(blob(f.n+20, 40, 50, 32, 25, 10, 0.06), pp.skin,
			svg.A("stroke", outline),
			svg.A("stroke-width", "1.5"),
		).Labeled("skin"),
	)
	for i, cx := range [2]float64{27, 53} {
		head.Add(pepeEye(pp, cx, 36, i == 0))
	}
	if pp.mood == pepeCrying {
		for _, cx := range [2]float64{27, 53} {
			head.Add(svg.Path(geom.NewPath().MoveTo(cx, 42).QuadTo(cx-3, 54, cx-1, 68), "none",
				svg.A("stroke", "#5DADE2"),
				svg.A("stroke-width", "2.5"),
				svg.A("stroke-linecap", "round"),
				svg.A("opacity", "0.85"),
			).Labeled("tear"))
		}
	}
	if pp.glasses != pepeNoGlasses {
		head.Add(pepeSunglasses(pp.glasses, 15, 28, 50))
	}
	head.Add(pepeMouth(pp).Labeled("mouth"))

	f.body(head)
	return f.doc
}

// pepeEye 白目・瞳・瞼を1つのグループにまとめた目
//
// 瞼は自分の目の後に描くので、隣の目に被ることはありません。
func pepeEye(pp pepe, cx, cy float64, left bool) *svg.Node {
	const rx, ry = 10, 7
	g := svg.Group().Labeled("eye")
	g.Add(
		svg.Ellipse(cx, cy, rx, ry, palette.White, svg.A("stroke", outline), svg.A("stroke-width", "1.2")),
		svg.Circle(cx+pp.gazeX, cy+pp.gazeY, 3.2, outline).Labeled("pupil"),
	)

	// 内側と外側の瞼の高さ
	inner, outer := cy-2.5, cy-1
	switch pp.mood {
	case pepeMad:
		inner, outer = cy+0.5, cy-4.5
	case pepeCrying:
		inner, outer = cy-3.5, cy+0.5
	}
	yl, yr := outer, inner
	if !left {
		yl, yr = inner, outer
	}
	g.Add(svg.Path(eyelid(cx, cy, rx, ry, yl, yr), pp.skin,
		svg.A("stroke", outline),
		svg.A("stroke-width", "1.2"),
		svg.A("stroke-linejoin", "round"),
	).Labeled("eyelid"))

	if pp.mood == pepeMad {
		var brow *geom.Path
		if left {
			brow = geom.NewPath().MoveTo(cx-rx, cy-ry-5).LineTo(cx+rx-1, cy-ry)
		} else {
			brow = geom.NewPath().MoveTo(cx-rx+1, cy-ry).LineTo(cx+rx, cy-ry-5)
		}
		g.Add(svg.Path(brow, "none",
			svg.A("stroke", outline),
			svg.A("stroke-width", "2.2"),
			svg.A("stroke-linecap", "round"),
		).Labeled("brow"))
	}
	return g
}

func pepeMouth(pp pepe) *svg.Node {
	half := pp.mouthWidth / 2
	s := lipShape{
		left:  geom.Pt(40-half, 62),
		right: geom.Pt(40+half, 62),
		upper: 1.2,
		lower: 2,
		bend:  0.4,
	}
	switch pp.mood {
	case pepeMad:
		s.left.Y, s.right.Y = 65, 65
		s.upper, s.lower, s.bend = 2.5, 0.5, -1.2
	case pepeCrying:
		s.left.Y, s.right.Y = 66, 64
		s.upper, s.lower, s.bend = 3, 0.8, -1.6
	}
	return lips(s, pp.lip, 1)
}

// 眼鏡は横100x縦40の座標系で描いた固定のパスを目の幅に合わせて拡大します
var pepeGlassesPaths = map[pepeGlasses][]struct {
	d           string
	fill        string
	stroke      string
	strokeWidth string
	opacity     string
}{
	pepeShutterShades: {
		{d: "M2 2H46V34H2Z M54 2H98V34H54Z", fill: "none", stroke: "#F4F4F4", strokeWidth: "4"},
		{d: "M2 10H46 M2 18H46 M2 26H46 M54 10H98 M54 18H98 M54 26H98", fill: "none", stroke: "#F4F4F4", strokeWidth: "3"},
		{d: "M46 12H54", fill: "none", stroke: "#F4F4F4", strokeWidth: "4"},
	},
	pepeNerdGlasses: {
		{d: "M4 6H44Q48 6 48 10V30Q48 34 44 34H4Q0 34 0 30V10Q0 6 4 6Z M56 6H96Q100 6 100 10V30Q100 34 96 34H56Q52 34 52 30V10Q52 6 56 6Z", fill: "#FFFFFF", stroke: "#111111", strokeWidth: "5", opacity: "0.9"},
		{d: "M48 14Q50 10 52 14", fill: "none", stroke: "#111111", strokeWidth: "4"},
	},
	pepeAviators: {
		{d: "M2 8Q24 2 46 8Q46 30 26 34Q6 32 2 8Z M54 8Q76 2 98 8Q94 32 74 34Q54 30 54 8Z", fill: "#1C2833", stroke: "#B7950B", strokeWidth: "3"},
		{d: "M46 10Q50 6 54 10 M8 7Q24 3 40 7", fill: "none", stroke: "#B7950B", strokeWidth: "2"},
	},
}

func pepeSunglasses(style pepeGlasses, left, top, width float64) *svg.Node {
	g := svg.Group(svg.A("transform", geom.Transform{}.Translate(left, top).Scale(width/100).String())).Labeled("sunglasses")
	for _, part := range pepeGlassesPaths[style] {
		n := svg.RawPath(part.d, part.fill,
			svg.A("stroke", part.stroke),
			svg.A("stroke-width", part.strokeWidth),
			svg.A("stroke-linejoin", "round"),
		)
		if part.opacity != "" {
			n.Set(svg.A("fill-opacity", part.opacity))
		}
		g.Add(n)
	}
	return g
}

func pepeBackgroundPattern(id string, pp pepe) *svg.Node {
	s := pp.patternSize
	half := s / 2
	pattern := svg.El("pattern",
		svg.A("id", id),
		svg.A("patternUnits", "userSpaceOnUse"),
		svg.F("width", s),
		svg.F("height", s),
	)
	ink := pp.patternInk
	switch pp.pattern {
	case pepeVStripes:
		pattern.Add(svg.Rect(0, 0, half, s, ink))
	case pepeHStripes:
		pattern.Add(svg.Rect(0, 0, s, half, ink))
	case pepeDots:
		pattern.Add(svg.Circle(half, half, s/5, ink))
	case pepeCheckerboard:
		pattern.Add(svg.Rect(0, 0, half, half, ink), svg.Rect(half, half, half, half, ink))
	case pepeDiagonal:
		pattern.Add(svg.Path(geom.NewPath().MoveTo(0, s).LineTo(s, 0), "none",
			svg.A("stroke", ink),
			svg.F("stroke-width", s/4),
		))
	}
	return pattern
}
