package geom

import (
	"math"
	"strings"
)

// Rules L-systemの書き換え規則。規則の無い文字はそのまま残ります
type Rules map[byte]string

// Expand axiomをrulesでiterations回書き換えます
//
// 書き換え後の長さがlimit文字を超える場合はその手前の結果を返します。limitが0以下なら無制限です。
func Expand(axiom string, rules Rules, iterations, limit int) string {
	s := axiom
	for range iterations {
		var b strings.Builder
		b.Grow(len(s) * 2)
		for i := 0; i < len(s); i++ {
			if r, ok := rules[s[i]]; ok {
				b.WriteString(r)
			} else {
				b.WriteByte(s[i])
			}
			if limit > 0 && b.Len() > limit {
				return s
			}
		}
		s = b.String()
	}
	return s
}

// Box 軸平行な境界矩形
type Box struct {
	MinX, MinY, MaxX, MaxY float64
	valid                  bool
}

// Extend pを含むように広げます
func (b *Box) Extend(p Point) {
	if !b.valid {
		*b = Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y, valid: true}
		return
	}
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// Width 幅
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height 高さ
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Empty 点を一つも含まないかどうか
func (b Box) Empty() bool { return !b.valid }

// Drawing タートルグラフィックスの描画結果
type Drawing struct {
	// Strokes 連続した折れ線の集合。分岐を閉じる度に新しい折れ線になります
	Strokes [][]Point
	// Bounds 描いた全ての点の境界
	Bounds Box
	// Length 線分の総延長
	Length float64
}

type turtleState struct {
	pos     Point
	heading float64
}

// Turtle L-systemの命令列を解釈して線を描きます
//
//	F, G: 1単位進みながら線を描く
//	f:    線を描かずに1単位進む
//	+, -: angle度だけ左右に向きを変える
//	|:    180度向きを変える
//	[, ]: 位置と向きを保存/復元する。]で描きかけの線を確定させます
//
// それ以外の文字は無視します。
func Turtle(program string, angle, heading float64) Drawing {
	var (
		d     Drawing
		cur   = turtleState{heading: heading}
		stack []turtleState
		line  = []Point{cur.pos}
	)
	rad := math.Pi / 180
	commit := func() {
		if len(line) > 1 {
			d.Strokes = append(d.Strokes, line)
		}
		line = []Point{cur.pos}
	}
	d.Bounds.Extend(cur.pos)

	for i := 0; i < len(program); i++ {
		switch program[i] {
		case 'F', 'G':
			next := Pt(cur.pos.X+math.Cos(cur.heading*rad), cur.pos.Y+math.Sin(cur.heading*rad))
			cur.pos = next
			line = append(line, next)
			d.Bounds.Extend(next)
			d.Length++
		case 'f':
			cur.pos = Pt(cur.pos.X+math.Cos(cur.heading*rad), cur.pos.Y+math.Sin(cur.heading*rad))
			commit()
		case '+':
			cur.heading += angle
		case '-':
			cur.heading -= angle
		case '|':
			cur.heading += 180
		case '[':
			stack = append(stack, cur)
		case ']':
			if len(stack) == 0 {
				continue
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			commit()
		}
	}
	commit()
	return d
}

// Fitting 描画をキャンバスに収める変換
type Fitting struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Fit boundsをsize四方のキャンバスの中央にmargin倍で収める変換を返します
//
// 幅か高さが0の場合はもう一方だけで倍率を決めます。
func Fit(bounds Box, size, margin float64) Fitting {
	w, h := bounds.Width(), bounds.Height()
	var s float64
	switch {
	case bounds.Empty() || (w <= 0 && h <= 0):
		s = 1
	case w <= 0:
		s = margin * size / h
	case h <= 0:
		s = margin * size / w
	default:
		s = margin * math.Min(size/w, size/h)
	}
	return Fitting{
		Scale:      s,
		TranslateX: size/2 - (bounds.MinX+w/2)*s,
		TranslateY: size/2 - (bounds.MinY+h/2)*s,
	}
}

// Apply pに変換を適用します
func (f Fitting) Apply(p Point) Point {
	return Pt(p.X*f.Scale+f.TranslateX, p.Y*f.Scale+f.TranslateY)
}

// StrokeForCoverage 総延長lengthの線が面積areaのcoverage割を塗る線幅を[lo, hi]に収めて返します
func StrokeForCoverage(length, area, coverage, lo, hi float64) float64 {
	if length <= 0 {
		return hi
	}
	w := coverage * area / length
	return math.Max(lo, math.Min(hi, w))
}
