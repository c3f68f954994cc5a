package variants

import (
	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

const animeSize = 80

var (
	animeSkinTones = []string{"#FFE0BD", "#FFCD94", "#F1C27D", "#E0AC69", "#FFDBAC"}
	animeBlush     = "#FF9AA2"
	kodamaSkin     = "#F4F1E8"
)

type animeEyeStyle int

const (
	animeEyeSparkly animeEyeStyle = iota
	animeEyeHappy
	animeEyeDot
	animeEyeSleepy
	animeEyeSharp
	animeEyeWink
	animeEyeStyles
)

type animeMouthStyle int

const (
	animeMouthSmile animeMouthStyle = iota
	animeMouthOpen
	animeMouthCat
	animeMouthO
	animeMouthFlat
	animeMouthShout
	animeMouthPout
	animeMouthStyles
)

type anime struct {
	background string
	skin       string
	hair       string
	iris       string
	ink        string
	kodama     bool
	eyeStyle   animeEyeStyle
	mouthStyle animeMouthStyle
	brows      bool
	browTilt   float64
	blush      bool
	sparkle    bool
	spikes     int
	tilt       float64
	eyeGap     float64
}

func newAnime(f *frame) anime {
	n := f.n
	a := anime{
		background: f.color(n),
		skin:       animeSkinTones[seed.SpreadUnit(n+1, len(animeSkinTones), 0)],
		kodama:     seed.Chance(n+3, 10),
		eyeStyle:   animeEyeStyle(seed.SpreadUnit(n+4, int(animeEyeStyles), 0)),
		mouthStyle: animeMouthStyle(seed.SpreadUnit(n+6, int(animeMouthStyles), 0)),
		brows:      seed.Chance(n+7, 60),
		browTilt:   seed.Between(n+10, -12, 12),
		blush:      seed.Chance(n+8, 45),
		sparkle:    seed.Chance(n+9, 30),
		spikes:     4 + seed.SpreadUnit(n+11, 3, 0),
		tilt:       seed.Between(n+12, -7, 7),
		eyeGap:     seed.Between(n+13, 7, 9.5),
		ink:        "#2B2B2B",
	}
	a.hair = f.distinct(n+2, a.background)
	a.iris = f.distinct(n+5, a.skin)
	if a.kodama {
		a.skin = kodamaSkin
		a.ink = outline
	}
	return a
}

// Anime アニメ調の顔。まれに木霊風の別画風になります
func Anime(p Params) *svg.Document {
	f := newFrame(p, "anime", animeSize)
	a := newAnime(f)

	f.body(svg.Rect(0, 0, animeSize, animeSize, a.background))
	if a.sparkle {
		f.body(svg.Path(sparkle(64, 15, 5), palette.White, svg.A("opacity", "0.9")).Labeled("sparkle"))
	}
	if a.kodama {
		f.body(kodamaFace(f, a))
		return f.doc
	}

	head := svg.Group(svg.A("transform", geom.Transform{}.Rotate(a.tilt, 40, 46).String())).Labeled("head")
	head.Add(
		svg.Path(geom.NewPath().
			MoveTo(16, 48).
			CurveTo(12, 20, 30, 12, 40, 12).
			CurveTo(50, 12, 68, 20, 64, 48).
			LineTo(66, 70).LineTo(14, 70).
			Close(), a.hair).Labeled("hair"),
		svg.Ellipse(40, 46, 20, 22, a.skin).Labeled("face"),
		svg.Path(animeBangs(a.spikes), a.hair).Labeled("bangs"),
	)
	if a.blush {
		for _, cx := range [2]float64{40 - a.eyeGap - 3, 40 + a.eyeGap + 3} {
			head.Add(svg.Ellipse(cx, 54, 3.5, 1.8, animeBlush, svg.A("opacity", "0.6")).Labeled("blush"))
		}
	}
	for i, side := range [2]float64{-1, 1} {
		cx := 40 + side*a.eyeGap
		head.Add(animeEye(a, cx, 47, i == 1).Labeled("eye"))
		if a.brows {
			t := a.browTilt * side
			head.Add(svg.Path(geom.NewPath().MoveTo(cx-3.5, 40).LineTo(cx+3.5, 40), "none",
				svg.A("stroke", a.ink),
				svg.A("stroke-width", "1.2"),
				svg.A("stroke-linecap", "round"),
				svg.A("transform", geom.Transform{}.Rotate(t, cx, 40).String()),
			).Labeled("brow"))
		}
	}
	head.Add(animeMouth(a, 40, 58).Labeled("mouth"))

	f.body(head)
	return f.doc
}

// animeBangs 額にかかるギザギザの前髪
func animeBangs(spikes int) *geom.Path {
	const left, right, top, bottom = 20, 60, 22, 38
	p := geom.NewPath().MoveTo(left, 44).QuadTo(left, top-4, 40, top-6).QuadTo(right, top-4, right, 44)
	step := float64(right-left) / float64(spikes)
	for i := spikes; i > 0; i-- {
		x := left + step*float64(i)
		p.LineTo(x-step/2, top+4).LineTo(x-step, bottom-float64(i%2)*3)
	}
	return p.Close()
}

func animeEye(a anime, cx, cy float64, second bool) *svg.Node {
	g := svg.Group()
	closedArc := func(up bool) *svg.Node {
		d := geom.NewPath().MoveTo(cx-3.5, cy)
		if up {
			d.QuadTo(cx, cy-3.5, cx+3.5, cy)
		} else {
			d.QuadTo(cx, cy+2.5, cx+3.5, cy)
		}
		return svg.Path(d, "none",
			svg.A("stroke", a.ink),
			svg.A("stroke-width", "1.4"),
			svg.A("stroke-linecap", "round"),
		)
	}
	open := func() {
		g.Add(
			svg.Ellipse(cx, cy, 3.4, 4.4, palette.White),
			svg.Ellipse(cx, cy+0.4, 2.6, 3.6, a.iris),
			svg.Circle(cx, cy+0.6, 1.4, a.ink),
			svg.Circle(cx-1, cy-1.2, 0.9, palette.White),
			svg.Path(geom.NewPath().MoveTo(cx-3.8, cy-3.6).QuadTo(cx, cy-5.6, cx+3.8, cy-3.6), "none",
				svg.A("stroke", a.ink),
				svg.A("stroke-width", "1.2"),
				svg.A("stroke-linecap", "round"),
			),
		)
	}

	switch a.eyeStyle {
	case animeEyeSparkly:
		open()
		g.Add(svg.Path(sparkle(cx+1.2, cy+1.4, 1.1), palette.White))
	case animeEyeHappy:
		g.Add(closedArc(true))
	case animeEyeDot:
		g.Add(svg.Ellipse(cx, cy, 1.4, 1.9, a.ink))
	case animeEyeSleepy:
		g.Add(
			svg.Path(geom.NewPath().MoveTo(cx-3.4, cy).QuadTo(cx, cy+3.2, cx+3.4, cy).Close(), a.iris),
			svg.Path(geom.NewPath().MoveTo(cx-3.8, cy).LineTo(cx+3.8, cy), "none",
				svg.A("stroke", a.ink),
				svg.A("stroke-width", "1.3"),
				svg.A("stroke-linecap", "round"),
			),
		)
	case animeEyeSharp:
		g.Add(svg.Path(geom.NewPath().
			MoveTo(cx-3.8, cy+1.2).
			QuadTo(cx, cy-3, cx+3.8, cy-1.8).
			QuadTo(cx+1, cy+2.8, cx-3.8, cy+1.2).
			Close(), a.iris, svg.A("stroke", a.ink), svg.A("stroke-width", "0.9")))
	case animeEyeWink:
		if second {
			g.Add(closedArc(false))
		} else {
			open()
		}
	}
	return g
}

func animeMouth(a anime, cx, cy float64) *svg.Node {
	stroke := func(d *geom.Path) *svg.Node {
		return svg.Path(d, "none",
			svg.A("stroke", a.ink),
			svg.A("stroke-width", "1.2"),
			svg.A("stroke-linecap", "round"),
			svg.A("stroke-linejoin", "round"),
		)
	}
	const mouthFill = "#C0392B"

	switch a.mouthStyle {
	case animeMouthOpen:
		return svg.Path(geom.NewPath().MoveTo(cx-4, cy-1).HLineTo(cx+4).QuadTo(cx+3.5, cy+4.5, cx, cy+4.5).QuadTo(cx-3.5, cy+4.5, cx-4, cy-1).Close(),
			mouthFill, svg.A("stroke", a.ink), svg.A("stroke-width", "1"))
	case animeMouthCat:
		return stroke(geom.NewPath().MoveTo(cx-4, cy-0.5).QuadTo(cx-2, cy+2.5, cx, cy).QuadTo(cx+2, cy+2.5, cx+4, cy-0.5))
	case animeMouthO:
		return svg.Ellipse(cx, cy+1, 1.6, 2, mouthFill, svg.A("stroke", a.ink), svg.A("stroke-width", "1"))
	case animeMouthFlat:
		return stroke(geom.NewPath().MoveTo(cx-3, cy+0.5).LineTo(cx+3, cy+0.5))
	case animeMouthShout:
		return svg.Path(geom.NewPath().MoveTo(cx-4, cy-1.5).LineTo(cx+4, cy-1.5).LineTo(cx, cy+5).Close(),
			mouthFill, svg.A("stroke", a.ink), svg.A("stroke-width", "1"), svg.A("stroke-linejoin", "round"))
	case animeMouthPout:
		return stroke(geom.NewPath().MoveTo(cx-3.5, cy+2).QuadTo(cx, cy-1.5, cx+3.5, cy+2))
	default:
		return stroke(geom.NewPath().MoveTo(cx-4.5, cy-0.5).QuadTo(cx, cy+3.5, cx+4.5, cy-0.5))
	}
}

// kodamaFace 白い頭に黒い穴の目と口が開いた、揺らぎのある手描き風の顔
func kodamaFace(f *frame, a anime) *svg.Node {
	n := f.n + 300
	g := svg.Group(svg.A("transform", geom.Transform{}.Rotate(a.tilt*1.5, 40, 50).String())).Labeled("head")
	g.Add(
		svg.Path(blob(n, 40, 48, 25, 27, 9, 0.05), a.skin,
			svg.A("stroke", outline),
			svg.A("stroke-width", "1.2"),
		).Labeled("face"),
	)
	for i, cx := range [2]float64{31, 49} {
		ry := 4 + seed.Between(n+uint64(50+i), -0.8, 1.2)
		g.Add(svg.Path(blob(n+uint64(100*(i+1)), cx, 42, 3.2, ry, 7, 0.12), a.ink).Labeled("eye"))
	}
	mouthY := 57 + seed.Between(n+60, -1.5, 1.5)
	g.Add(svg.Path(blob(n+400, 40+seed.Between(n+61, -2, 2), mouthY, 3, 3.8+seed.Between(n+62, 0, 1.5), 7, 0.15), a.ink).Labeled("mouth"))
	return g
}
