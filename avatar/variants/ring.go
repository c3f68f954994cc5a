package variants

import (
	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/svg"
)

const (
	ringSize   = 90
	ringColors = 5
)

// ringCells 9つの領域それぞれに使う色の番号
var ringCells = [9]int{0, 1, 1, 2, 2, 3, 3, 0, 4}

// Ring 同心円状の帯
func Ring(p Params) *svg.Document {
	f := newFrame(p, "ring", ringSize)

	var picks [ringColors]string
	for i := range ringColors {
		picks[i] = f.color(f.n + uint64(i))
	}
	var c [len(ringCells)]string
	for i, k := range ringCells {
		c[i] = picks[k]
	}

	const mid = ringSize / 2
	halfDisc := func(r float64, upper bool) *geom.Path {
		return geom.NewPath().
			MoveTo(mid+r, mid).
			ArcTo(r, r, 0, false, !upper, mid-r, mid).
			HLineTo(mid + r).
			Close()
	}

	f.body(
		svg.Path(geom.Rect(0, 0, ringSize, mid), c[0]),
		svg.Path(geom.Rect(0, mid, ringSize, mid), c[1]),
		svg.Path(halfDisc(38, true), c[2]).Labeled("ring"),
		svg.Path(halfDisc(38, false), c[3]).Labeled("ring"),
		svg.Path(halfDisc(32, true), c[4]).Labeled("ring"),
		svg.Path(halfDisc(32, false), c[5]).Labeled("ring"),
		svg.Path(halfDisc(26, true), c[6]).Labeled("ring"),
		svg.Path(halfDisc(26, false), c[7]).Labeled("ring"),
		svg.Circle(mid, mid, 23, c[8]).Labeled("ring"),
	)
	return f.doc
}
