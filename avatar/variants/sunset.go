package variants

import (
	"strconv"

	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/svg"
)

const (
	sunsetSize   = 80
	sunsetColors = 4
)

// Sunset 上下2段のグラデーション
func Sunset(p Params) *svg.Document {
	f := newFrame(p, "sunset", sunsetSize)

	var colors [sunsetColors]string
	for i := range sunsetColors {
		colors[i] = f.color(f.n + uint64(i))
	}

	const half = sunsetSize / 2
	for i := range 2 {
		id := f.id("gradient-" + strconv.Itoa(i))
		top := float64(i * half)
		f.body(svg.Path(geom.Rect(0, top, sunsetSize, half), url(id)).Labeled("band"))
		f.defs(svg.El("linearGradient",
			svg.A("id", id),
			svg.F("x1", half), svg.F("y1", top),
			svg.F("x2", half), svg.F("y2", top+half),
			svg.A("gradientUnits", "userSpaceOnUse"),
		).Add(
			svg.El("stop", svg.A("stop-color", colors[i*2])),
			svg.El("stop", svg.A("offset", "1"), svg.A("stop-color", colors[i*2+1])),
		))
	}
	return f.doc
}
