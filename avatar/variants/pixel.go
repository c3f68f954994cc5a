package variants

import (
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

const (
	pixelSize  = 80
	pixelGrid  = 8
	pixelCell  = pixelSize / pixelGrid
	pixelCells = pixelGrid * pixelGrid
)

// Pixel 8x8のモザイク
func Pixel(p Params) *svg.Document {
	f := newFrame(p, "pixel", pixelSize)

	for i := range pixelCells {
		c := seed.RandomColor(f.n%uint64(i+1), f.colors, len(f.colors))
		x := float64(i/pixelGrid) * pixelCell
		y := float64(i%pixelGrid) * pixelCell
		f.body(svg.Rect(x, y, pixelCell, pixelCell, c).Labeled("cell"))
	}
	return f.doc
}
