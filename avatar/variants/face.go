package variants

import (
	"math"

	"github.com/traPtitech/avatars/avatar/geom"
	"github.com/traPtitech/avatars/avatar/seed"
	"github.com/traPtitech/avatars/avatar/svg"
)

// outline 手描き風の顔で使う輪郭線の色
const outline = "#1B1B1B"

// blob seed nで半径を揺らした手描き風の閉曲線
func blob(n uint64, cx, cy, rx, ry float64, points int, wobble float64) *geom.Path {
	return geom.Wobble(cx, cy, rx, ry, points, func(i int) float64 {
		return 1 + seed.Between(n+uint64(i)*7, -wobble, wobble)
	})
}

// lipShape 口の形。左右の端と上下の膨らみで決まります
type lipShape struct {
	left, right geom.Point
	// upper 上唇の中央の高さ(上向きが正)
	upper float64
	// lower 下唇の中央の深さ(下向きが正)
	lower float64
	// bend 中央線の曲がり具合(下向きが正)
	bend float64
}

// lips 輪郭・塗り・中央線の3層で唇を描きます
func lips(s lipShape, fill string, strokeWidth float64) *svg.Node {
	midX := (s.left.X + s.right.X) / 2
	midY := (s.left.Y + s.right.Y) / 2
	shape := func() *geom.Path {
		return geom.NewPath().
			MoveTo(s.left.X, s.left.Y).
			QuadTo(midX, midY-s.upper*2, s.right.X, s.right.Y).
			QuadTo(midX, midY+s.lower*2, s.left.X, s.left.Y).
			Close()
	}
	split := geom.NewPath().
		MoveTo(s.left.X, s.left.Y).
		QuadTo(midX, midY+s.bend*2, s.right.X, s.right.Y)

	return svg.Group().Add(
		svg.Path(shape(), "none",
			svg.A("stroke", outline),
			svg.F("stroke-width", strokeWidth*2.2),
			svg.A("stroke-linejoin", "round"),
		),
		svg.Path(shape(), fill),
		svg.Path(split, "none",
			svg.A("stroke", outline),
			svg.F("stroke-width", strokeWidth*0.8),
			svg.A("stroke-linecap", "round"),
		),
	)
}

// sparkle 4方向に尖ったきらめき
func sparkle(cx, cy, r float64) *geom.Path {
	k := r * 0.25
	return geom.NewPath().
		MoveTo(cx, cy-r).
		QuadTo(cx+k, cy-k, cx+r, cy).
		QuadTo(cx+k, cy+k, cx, cy+r).
		QuadTo(cx-k, cy+k, cx-r, cy).
		QuadTo(cx-k, cy-k, cx, cy-r).
		Close()
}

// eyelid 楕円の目の上部を、左端の高さyl・右端の高さyrを結ぶ弦で切り取った瞼
//
// 瞼は常に目の楕円の内側に収まります。
func eyelid(cx, cy, rx, ry, yl, yr float64) *geom.Path {
	lo, hi := cy-ry*0.9, cy+ry*0.9
	yl = math.Max(lo, math.Min(hi, yl))
	yr = math.Max(lo, math.Min(hi, yr))
	xl := cx - halfChord(rx, ry, yl-cy)
	xr := cx + halfChord(rx, ry, yr-cy)
	return geom.NewPath().
		MoveTo(xl, yl).
		ArcTo(rx, ry, 0, (yl+yr)/2 > cy, true, xr, yr).
		Close()
}

func halfChord(rx, ry, dy float64) float64 {
	t := dy / ry
	if t*t >= 1 {
		return 0
	}
	return rx * math.Sqrt(1-t*t)
}
