package variants

import (
	"math"

	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

const mageSize = 80

// mageEyeColors 白と黄色が半々になるように並べている
var mageEyeColors = [4]string{"#FFFFFF", "#FFD700", "#FFFFFF", "#FFD700"}

type mageEyeStyle int

const (
	mageEyeAlmond mageEyeStyle = iota
	mageEyeSlit
	mageEyeSlantUp
	mageEyeSlantDown
	mageEyeGlow
	mageEyeStyles
)

type mageHatStyle int

const (
	mageHatCone mageHatStyle = iota
	mageHatHood
	mageHatStar
	mageHatBrim
	mageHatStyles
)

type mage struct {
	background string
	face       string
	robe       string
	hat        string
	trim       string
	eyeColor   string
	eyeStyle   mageEyeStyle
	hatStyle   mageHatStyle
	headTilt   float64
	hatTilt    float64
	faceRX     float64
	faceRY     float64
	eyeY       float64
	eyeGap     float64
	eyeTilt    [2]float64
	eyeShift   [2]float64
}

func newMage(f *frame) mage {
	n := f.n
	face := palette.Darkest(f.colors)
	m := mage{
		face:     face,
		eyeColor: mageEyeColors[seed.SpreadUnit(n+10, len(mageEyeColors), 0)],
		eyeStyle: mageEyeStyle(seed.SpreadUnit(n+9, int(mageEyeStyles), 0)),
		hatStyle: mageHatStyle(seed.SpreadUnit(n+6, int(mageHatStyles), 0)),
		headTilt: seed.Between(n+3, -8, 8),
		hatTilt:  seed.Between(n+7, -12, 12),
		faceRX:   15 + float64(seed.SpreadUnit(n+4, 4, 0)),
		faceRY:   17 + float64(seed.SpreadUnit(n+5, 4, 0)),
		eyeY:     44 + seed.Between(n+12, -1.5, 1.5),
		eyeGap:   6 * (0.85 + 0.3*seed.Float(n+11)),
		eyeTilt:  [2]float64{seed.Between(n+13, -10, 10), seed.Between(n+14, -10, 10)},
		eyeShift: [2]float64{seed.Between(n+15, -0.8, 0.8), seed.Between(n+16, -0.8, 0.8)},
	}
	m.background = f.distinct(n+1, face)
	m.robe = f.distinct(n+2, face)
	m.hat = f.distinct(n+8, face)
	m.trim = palette.ContrastSafe(m.hat, "#FFD700")
	return m
}

// Mage フードや帽子をかぶった魔法使いの肖像
func Mage(p Params) *svg.Document {
	f := newFrame(p, "mage", mageSize)
	m := newMage(f)

	const cx = mageSize / 2
	faceCY := 46.0

	head := svg.Group(svg.A("transform", geom.Transform{}.Rotate(m.headTilt, cx, faceCY).String())).Labeled("head")
	if m.hatStyle == mageHatHood {
		head.Add(mageHood(m))
	}
	head.Add(svg.Ellipse(cx, faceCY, m.faceRX, m.faceRY, m.face).Labeled("face"))
	for i, side := range [2]float64{-1, 1} {
		x := cx + side*m.eyeGap
		y := m.eyeY + m.eyeShift[i]
		tilt := m.eyeTilt[i]
		switch m.eyeStyle {
		case mageEyeSlantUp:
			tilt += side * -15
		case mageEyeSlantDown:
			tilt += side * 15
		}
		head.Add(mageEye(m, x, y, tilt).Labeled("eye"))
	}
	if m.hatStyle != mageHatHood {
		head.Add(mageHat(m))
	}

	f.body(
		svg.Rect(0, 0, mageSize, mageSize, m.background),
		svg.Path(geom.NewPath().
			MoveTo(8, 80).
			CurveTo(12, 60, 26, 56, cx, 56).
			CurveTo(54, 56, 68, 60, 72, 80).
			Close(), m.robe).Labeled("robe"),
		head,
	)
	return f.doc
}

func mageEye(m mage, x, y, tilt float64) *svg.Node {
	g := svg.Group(svg.A("transform", geom.Transform{}.Rotate(tilt, x, y).String()))
	switch m.eyeStyle {
	case mageEyeSlit:
		g.Add(svg.Ellipse(x, y, 0.9, 3, m.eyeColor))
	case mageEyeGlow:
		g.Add(
			svg.Ellipse(x, y, 4.5, 5.2, m.eyeColor, svg.A("opacity", "0.35")),
			svg.Ellipse(x, y, 3, 3.8, m.eyeColor),
			svg.Circle(x-1, y-1.2, 0.9, palette.White),
		)
	default:
		g.Add(svg.Path(geom.NewPath().
			MoveTo(x-3, y).
			QuadTo(x, y-2.2, x+3, y).
			QuadTo(x, y+2.2, x-3, y).
			Close(), m.eyeColor))
	}
	return g
}

func mageHood(m mage) *svg.Node {
	// 裾がギザギザのフード
	d := geom.NewPath().
		MoveTo(40, 16).
		CurveTo(58, 16, 66, 34, 64, 60).
		LineTo(58, 54).LineTo(54, 62).LineTo(48, 56).LineTo(40, 63).
		LineTo(32, 56).LineTo(26, 62).LineTo(22, 54).LineTo(16, 60).
		CurveTo(14, 34, 22, 16, 40, 16).
		Close()
	return svg.Group(svg.A("transform", geom.Transform{}.Rotate(m.hatTilt/2, 40, 40).String())).Labeled("hat").Add(
		svg.Path(d, m.hat),
	)
}

func mageHat(m mage) *svg.Node {
	g := svg.Group(svg.A("transform", geom.Transform{}.Rotate(m.hatTilt, 40, 34).String())).Labeled("hat")
	switch m.hatStyle {
	case mageHatCone:
		g.Add(
			svg.Path(geom.NewPath().MoveTo(40, 4).LineTo(57, 34).QuadTo(40, 40, 23, 34).Close(), m.hat),
			svg.Ellipse(40, 34, 22, 4, m.hat),
		)
	case mageHatStar:
		g.Add(
			svg.Path(geom.NewPath().
				MoveTo(44, 3).
				CurveTo(44, 16, 54, 26, 62, 35).
				LineTo(18, 35).
				CurveTo(28, 26, 38, 16, 44, 3).
				Close(), m.hat),
			svg.Path(star(46, 22, 4.2, 1.8, 5), m.trim).Labeled("star"),
		)
	case mageHatBrim:
		g.Add(
			svg.Path(geom.NewPath().MoveTo(28, 34).LineTo(30, 12).QuadTo(40, 8, 50, 12).LineTo(52, 34).Close(), m.hat),
			svg.Ellipse(40, 34, 27, 5, m.hat),
			svg.Rect(29, 27, 22, 4, m.trim).Labeled("band"),
		)
	}
	return g
}

// star 中心(cx, cy)のpoints個の頂点を持つ星形
func star(cx, cy, outer, inner float64, points int) *geom.Path {
	pts := make([]geom.Point, 0, points*2)
	for i := range points * 2 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi*float64(i)/float64(points) - math.Pi/2
		pts = append(pts, geom.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return geom.NewPath().Polyline(pts).Close()
}
