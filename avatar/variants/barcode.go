package variants

import (
	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

const barcodeSize = 80

type barcodeStripe struct {
	x, width float64
	color    string
}

// Barcode 縦縞を繰り返すバーコード風の模様
func Barcode(p Params) *svg.Document {
	f := newFrame(p, "barcode", barcodeSize)
	n := f.n

	background := f.color(n)
	period := float64(16 + seed.SpreadUnit(n+3, 5, 0)*8)

	var stripes []barcodeStripe
	x := float64(seed.SpreadUnit(n+5, 3, 0))
	for i := 0; x < period; i++ {
		k := uint64(i)
		w := float64(1 + seed.SpreadUnit(n+7*k+11, 4, 0))
		if x+w > period {
			w = period - x
		}
		stripes = append(stripes, barcodeStripe{
			x:     x,
			width: w,
			color: f.distinct(n+3*k+1, background),
		})
		x += w + float64(1+seed.SpreadUnit(n+5*k+17, 3, 0))
	}

	id := f.id("pattern")
	pattern := svg.El("pattern",
		svg.A("id", id),
		svg.A("patternUnits", "userSpaceOnUse"),
		svg.F("width", period),
		svg.F("height", barcodeSize),
		svg.A("patternTransform", geom.Transform{}.Translate(float64(seed.SpreadUnit(n+29, int(period), 0)), 0).String()),
	)
	for _, s := range stripes {
		pattern.Add(svg.Rect(s.x, 0, s.width, barcodeSize, s.color).Labeled("stripe"))
	}
	f.defs(pattern)

	f.body(
		svg.Rect(0, 0, barcodeSize, barcodeSize, background),
		svg.Rect(0, 0, barcodeSize, barcodeSize, url(id)).Labeled("bars"),
	)
	return f.doc
}
