package variants

import (
	"strconv"

	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

const (
	fractalSize  = 80
	fractalArea  = fractalSize * fractalSize
	fractalLimit = 40000
)

type lsystem struct {
	name      string
	axiom     string
	rules     geom.Rules
	angle     float64
	minIter   int
	maxIter   int
	angleJit  float64
	symmetric bool
}

// denseFamily 背景を埋める空間充填系の曲線
var denseFamily = []lsystem{
	{name: "hilbert", axiom: "A", rules: geom.Rules{'A': "+BF-AFA-FB+", 'B': "-AF+BFB+FA-"}, angle: 90, minIter: 4, maxIter: 5, angleJit: 2},
	{name: "gosper", axiom: "F", rules: geom.Rules{'F': "F-G--G+F++FF+G-", 'G': "+F-GG--G-F++F+G"}, angle: 60, minIter: 3, maxIter: 4, angleJit: 1.5},
	{name: "arrowhead", axiom: "F", rules: geom.Rules{'F': "G-F-G", 'G': "F+G+F"}, angle: 60, minIter: 5, maxIter: 6, angleJit: 2},
	{name: "dragon", axiom: "FX", rules: geom.Rules{'X': "X+YF+", 'Y': "-FX-Y"}, angle: 90, minIter: 9, maxIter: 11, angleJit: 3},
	{name: "quadratic-koch", axiom: "F+F+F+F", rules: geom.Rules{'F': "F+F-F-FF+F+F-F"}, angle: 90, minIter: 2, maxIter: 3, angleJit: 1},
	{name: "moore", axiom: "LFL+F+LFL", rules: geom.Rules{'L': "-RF+LFL+FR-", 'R': "+LF-RFR-FL+"}, angle: 90, minIter: 3, maxIter: 4, angleJit: 2},
}

// sparseFamily 前景に描く植物や雪の結晶のような疎な図形
var sparseFamily = []lsystem{
	{name: "plant", axiom: "X", rules: geom.Rules{'X': "F+[[X]-X]-F[-FX]+X", 'F': "FF"}, angle: 25, minIter: 4, maxIter: 5, angleJit: 6},
	{name: "bush", axiom: "F", rules: geom.Rules{'F': "FF+[+F-F-F]-[-F+F+F]"}, angle: 22.5, minIter: 3, maxIter: 4, angleJit: 5},
	{name: "snowflake", axiom: "F--F--F", rules: geom.Rules{'F': "F+F--F+F"}, angle: 60, minIter: 2, maxIter: 3, angleJit: 0, symmetric: true},
	{name: "sierpinski", axiom: "F-G-G", rules: geom.Rules{'F': "F-G+F+G-F", 'G': "GG"}, angle: 120, minIter: 3, maxIter: 4, angleJit: 0, symmetric: true},
	{name: "levy", axiom: "F", rules: geom.Rules{'F': "+F--F+"}, angle: 45, minIter: 7, maxIter: 9, angleJit: 4},
	{name: "twig", axiom: "X", rules: geom.Rules{'X': "F[+X][-X]FX", 'F': "FF"}, angle: 25.7, minIter: 4, maxIter: 5, angleJit: 8},
	{name: "crystal", axiom: "F+F+F+F", rules: geom.Rules{'F': "FF+F++F+F"}, angle: 90, minIter: 2, maxIter: 3, angleJit: 0, symmetric: true},
}

// fractalLayerStyle レイヤーごとの値域
type fractalLayerStyle struct {
	family                 []lsystem
	offset                 uint64
	coverageLo, coverageHi float64
	strokeLo, strokeHi     float64
	opacityLo, opacityHi   float64
	marginLo, marginHi     float64
	dashChance             int
}

var (
	fractalBackground = fractalLayerStyle{
		family: denseFamily, offset: 100,
		coverageLo: 0.35, coverageHi: 0.55,
		strokeLo: 0.4, strokeHi: 3.5,
		opacityLo: 0.35, opacityHi: 0.7,
		marginLo: 1.35, marginHi: 1.6,
		dashChance: 35,
	}
	fractalForeground = fractalLayerStyle{
		family: sparseFamily, offset: 200,
		coverageLo: 0.12, coverageHi: 0.22,
		strokeLo: 0.6, strokeHi: 2.5,
		opacityLo: 0.8, opacityHi: 1,
		marginLo: 0.72, marginHi: 0.88,
		dashChance: 20,
	}
)

// fractalLayer 1枚のフラクタルのパラメーター
type fractalLayer struct {
	system     lsystem
	iterations int
	angle      float64
	rotation   float64
	offsetX    float64
	offsetY    float64
	coverage   float64
	strokeLo   float64
	strokeHi   float64
	opacity    float64
	margin     float64
	dash       []float64
	gradient   [2]string
	gradAngle  float64
}

func newFractalLayer(f *frame, style fractalLayerStyle, background string) fractalLayer {
	n := f.n + style.offset
	sys := style.family[seed.SpreadUnit(n+1, len(style.family), 0)]
	l := fractalLayer{
		system:     sys,
		iterations: sys.minIter + seed.SpreadUnit(n+2, sys.maxIter-sys.minIter+1, 0),
		angle:      sys.angle + seed.Between(n+3, -sys.angleJit, sys.angleJit),
		rotation:   float64(seed.SpreadUnit(n+4, 360, 0)),
		offsetX:    seed.Between(n+5, -6, 6),
		offsetY:    seed.Between(n+6, -6, 6),
		coverage:   seed.Between(n+7, style.coverageLo, style.coverageHi),
		strokeLo:   style.strokeLo,
		strokeHi:   style.strokeHi,
		opacity:    seed.Between(n+8, style.opacityLo, style.opacityHi),
		margin:     seed.Between(n+9, style.marginLo, style.marginHi),
		gradAngle:  float64(seed.SpreadUnit(n+10, 360, 0)),
	}
	if sys.symmetric {
		// 対称な図形は回転を角度の倍数に揃える
		l.rotation = float64(int(l.rotation/sys.angle)) * sys.angle
	}
	if seed.Chance(n+11, style.dashChance) {
		l.dash = []float64{seed.Between(n+12, 1, 6), seed.Between(n+13, 1, 4)}
	}
	for i := range l.gradient {
		c := f.color(n + 14 + uint64(i))
		if c == background {
			c = palette.ContrastSafe(background, palette.White)
		}
		l.gradient[i] = c
	}
	return l
}

func (l fractalLayer) render(f *frame, label string) (*svg.Node, *svg.Node) {
	program := geom.Expand(l.system.axiom, l.system.rules, l.iterations, fractalLimit)
	drawing := geom.Turtle(program, l.angle, l.rotation)
	fit := geom.Fit(drawing.Bounds, fractalSize, l.margin)

	d := geom.NewPath()
	for _, stroke := range drawing.Strokes {
		pts := make([]geom.Point, len(stroke))
		for i, pt := range stroke {
			pts[i] = fit.Apply(pt).Add(geom.Pt(l.offsetX, l.offsetY))
		}
		d.Polyline(pts)
	}
	width := geom.StrokeForCoverage(drawing.Length*fit.Scale, fractalArea, l.coverage, l.strokeLo, l.strokeHi)

	gradID := f.id(label + "-gradient")
	gradient := svg.El("linearGradient",
		svg.A("id", gradID),
		svg.A("gradientUnits", "userSpaceOnUse"),
		svg.F("x1", 0), svg.F("y1", 0),
		svg.F("x2", fractalSize), svg.F("y2", fractalSize),
		svg.A("gradientTransform", geom.Transform{}.Rotate(l.gradAngle, fractalSize/2, fractalSize/2).String()),
	).Add(
		svg.El("stop", svg.A("stop-color", l.gradient[0])),
		svg.El("stop", svg.A("offset", "1"), svg.A("stop-color", l.gradient[1])),
	)

	path := svg.Path(d, "none",
		svg.A("stroke", url(gradID)),
		svg.F("stroke-width", width),
		svg.A("stroke-linecap", "round"),
		svg.A("stroke-linejoin", "round"),
		svg.F("opacity", l.opacity),
	).Labeled(label)
	if len(l.dash) > 0 {
		path.Set(svg.A("stroke-dasharray", geom.Num(l.dash[0])+" "+geom.Num(l.dash[1])))
	}
	path.Set(svg.A("data-lsystem", l.system.name+"-"+strconv.Itoa(l.iterations)))
	return path, gradient
}

// Fractal 背景と前景の2枚のL-systemフラクタル
func Fractal(p Params) *svg.Document {
	f := newFrame(p, "fractal", fractalSize)

	background := f.color(f.n)
	f.body(svg.Rect(0, 0, fractalSize, fractalSize, background))
	for _, layer := range []struct {
		style fractalLayerStyle
		label string
	}{
		{fractalBackground, "background"},
		{fractalForeground, "foreground"},
	} {
		path, gradient := newFractalLayer(f, layer.style, background).render(f, layer.label)
		f.body(path)
		f.defs(gradient)
	}
	return f.doc
}
