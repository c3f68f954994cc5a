// Package geom アバター描画用の幾何プリミティブ
package geom

import (
	"math"
	"strconv"
	"strings"
)

// Num 座標値を小数点以下2桁に丸めた文字列にします
func Num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		// -0を避ける
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Point 2次元座標
type Point struct {
	X, Y float64
}

// Pt Pointを生成します
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add p+q
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale p*s
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Path SVGのパスデータ(d属性)ビルダー
type Path struct {
	cmds []string
}

// NewPath 空のPathを生成します
func NewPath() *Path {
	return &Path{}
}

func (p *Path) add(cmd byte, vs ...float64) *Path {
	var b strings.Builder
	b.WriteByte(cmd)
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Num(v))
	}
	p.cmds = append(p.cmds, b.String())
	return p
}

// MoveTo M x y
func (p *Path) MoveTo(x, y float64) *Path { return p.add('M', x, y) }

// LineTo L x y
func (p *Path) LineTo(x, y float64) *Path { return p.add('L', x, y) }

// HLineTo H x
func (p *Path) HLineTo(x float64) *Path { return p.add('H', x) }

// VLineTo V y
func (p *Path) VLineTo(y float64) *Path { return p.add('V', y) }

// CurveTo C x1 y1 x2 y2 x y
func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) *Path {
	return p.add('C', x1, y1, x2, y2, x, y)
}

// QuadTo Q x1 y1 x y
func (p *Path) QuadTo(x1, y1, x, y float64) *Path { return p.add('Q', x1, y1, x, y) }

// ArcTo A rx ry rotation large-arc sweep x y
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) *Path {
	return p.add('A', rx, ry, rotation, flag(largeArc), flag(sweep), x, y)
}

// Close Z
func (p *Path) Close() *Path {
	p.cmds = append(p.cmds, "Z")
	return p
}

// Polyline ptsを順に結ぶ線を追加します
func (p *Path) Polyline(pts []Point) *Path {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	return p
}

// Len コマンド数
func (p *Path) Len() int { return len(p.cmds) }

// String d属性の文字列
func (p *Path) String() string {
	return strings.Join(p.cmds, " ")
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Rect 矩形のパスを返します
func Rect(x, y, w, h float64) *Path {
	return NewPath().MoveTo(x, y).HLineTo(x + w).VLineTo(y + h).HLineTo(x).Close()
}

// Ellipse 楕円のパスを返します
func Ellipse(cx, cy, rx, ry float64) *Path {
	return NewPath().
		MoveTo(cx-rx, cy).
		ArcTo(rx, ry, 0, true, false, cx+rx, cy).
		ArcTo(rx, ry, 0, true, false, cx-rx, cy).
		Close()
}

// Wobble 中心(cx, cy)・半径rの閉曲線を、各頂点の半径をjitterでずらしながら滑らかに結びます
//
// jitterはi番目の頂点の半径倍率を返す関数です。
func Wobble(cx, cy, rx, ry float64, points int, jitter func(i int) float64) *Path {
	if points < 3 {
		points = 3
	}
	pts := make([]Point, points)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(points)
		k := jitter(i)
		pts[i] = Pt(cx+math.Cos(a)*rx*k, cy+math.Sin(a)*ry*k)
	}
	return SmoothClosed(pts)
}

// SmoothClosed 閉じたCatmull-Romスプラインを3次ベジェで表します
func SmoothClosed(pts []Point) *Path {
	p := NewPath()
	n := len(pts)
	if n == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for i := range n {
		p0 := pts[(i-1+n)%n]
		p1 := pts[i]
		p2 := pts[(i+1)%n]
		p3 := pts[(i+2)%n]
		c1 := Pt(p1.X+(p2.X-p0.X)/6, p1.Y+(p2.Y-p0.Y)/6)
		c2 := Pt(p2.X-(p3.X-p1.X)/6, p2.Y-(p3.Y-p1.Y)/6)
		p.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
	}
	return p.Close()
}
