package variants

import (
	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/svg"
)

const (
	marbleSize     = 80
	marbleElements = 3
)

var marbleBlobs = [marbleElements - 1]string{
	"M32.414 59.35L50.376 70.5H72.5v-71H33.728L26.5 13.381l19.057 27.08L32.414 59.35z",
	"M22.216 24L0 46.75l14.108 38.129L78 86l-3.081-59.276-22.378 4.005 12.972 20.186-23.35 27.395L22.215 24z",
}

// Marble ぼかした色の塊を重ねたマーブル模様
func Marble(p Params) *svg.Document {
	f := newFrame(p, "marble", marbleSize)

	var (
		colors  [marbleElements]string
		jitters [marbleElements]geom.Jitter
	)
	for i := range marbleElements {
		colors[i] = f.color(f.n + uint64(i))
		jitters[i] = geom.NewJitter(f.n, i, marbleSize)
	}

	filterID := f.id("filter")
	f.body(svg.Rect(0, 0, marbleSize, marbleSize, colors[0]))
	for i, d := range marbleBlobs {
		blob := svg.RawPath(d, colors[i+1],
			svg.A("filter", url(filterID)),
			svg.A("transform", jitters[i+1].Transform(marbleSize).String()),
		).Labeled("blob")
		if i == 1 {
			blob.Set(svg.A("style", "mix-blend-mode:overlay"))
		}
		f.body(blob)
	}

	f.defs(svg.El("filter",
		svg.A("id", filterID),
		svg.A("filterUnits", "userSpaceOnUse"),
		svg.A("color-interpolation-filters", "sRGB"),
	).Add(
		svg.El("feFlood", svg.A("flood-opacity", "0"), svg.A("result", "BackgroundImageFix")),
		svg.El("feBlend", svg.A("in", "SourceGraphic"), svg.A("in2", "BackgroundImageFix"), svg.A("result", "shape")),
		svg.El("feGaussianBlur", svg.A("stdDeviation", "7"), svg.A("result", "effect1_foregroundBlur")),
	))
	return f.doc
}
