package geom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", Num(0))
	assert.Equal(t, "0", Num(-0.001))
	assert.Equal(t, "1.5", Num(1.5))
	assert.Equal(t, "1.23", Num(1.2345))
	assert.Equal(t, "-7", Num(-7))
	assert.Equal(t, "80", Num(80.0000001))
}

func TestPath(t *testing.T) {
	t.Parallel()

	p := NewPath().MoveTo(0, 0).LineTo(1.006, 2).CurveTo(1, 2, 3, 4, 5, 6).ArcTo(38, 38, 0, false, true, 7, 45).Close()
	assert.Equal(t, "M0 0 L1.01 2 C1 2 3 4 5 6 A38 38 0 0 1 7 45 Z", p.String())
	assert.Equal(t, 5, p.Len())

	assert.Equal(t, "M0 0 H80 V40 H0 Z", Rect(0, 0, 80, 40).String())
	assert.True(t, strings.HasPrefix(Ellipse(40, 40, 10, 5).String(), "M30 40 A10 5 0 1 0 50 40"))
}

func TestWobble(t *testing.T) {
	t.Parallel()

	p := Wobble(40, 40, 20, 20, 8, func(int) float64 { return 1 })
	// M + 8C + Z
	assert.Equal(t, 10, p.Len())
	assert.Equal(t, p.String(), Wobble(40, 40, 20, 20, 8, func(int) float64 { return 1 }).String())
	assert.Equal(t, 5, Wobble(0, 0, 1, 1, 1, func(int) float64 { return 1 }).Len())
}

func TestTransform(t *testing.T) {
	t.Parallel()

	base := Transform{}.Translate(1, 2)
	a := base.Rotate(90, 40, 40)
	b := base.Scale(1.5)
	assert.Equal(t, "translate(1 2) rotate(90 40 40)", a.String())
	assert.Equal(t, "translate(1 2) scale(1.5)", b.String())
	assert.True(t, Transform{}.Empty())
}

func TestNewJitter(t *testing.T) {
	t.Parallel()

	for n := uint64(0); n < 2000; n += 7 {
		for i := range 3 {
			j := NewJitter(n, i, 80)
			assert.Less(t, j.TranslateX, 8.0)
			assert.Greater(t, j.TranslateX, -8.0)
			assert.GreaterOrEqual(t, j.Scale, 1.2)
			assert.Less(t, j.Scale, 1.6)
			assert.GreaterOrEqual(t, j.Rotate, 0.0)
			assert.Less(t, j.Rotate, 360.0)
		}
	}
	// 符号用の桁が偶数でも回転は負にならない
	assert.Equal(t, 1.0, NewJitter(1, 0, 80).Rotate)
	assert.Equal(t, NewJitter(12345, 1, 80), NewJitter(12345, 1, 80))
	assert.Contains(t, NewJitter(12345, 1, 80).Transform(80).String(), "rotate(")
}

func TestExpand(t *testing.T) {
	t.Parallel()

	algae := Rules{'A': "AB", 'B': "A"}
	assert.Equal(t, "A", Expand("A", algae, 0, 0))
	assert.Equal(t, "ABAABABA", Expand("A", algae, 4, 0))
	// 規則の無い文字はそのまま
	assert.Equal(t, "F+F", Expand("F+F", Rules{'X': "Y"}, 3, 0))
	// limitを超えたら打ち切り
	assert.LessOrEqual(t, len(Expand("A", algae, 40, 100)), 100)
	assert.Equal(t, "ABA", Expand("A", algae, 5, 4))
}

func TestTurtle(t *testing.T) {
	t.Parallel()

	t.Run("square", func(t *testing.T) {
		t.Parallel()
		d := Turtle("F+F+F+F", 90, 0)
		require.Len(t, d.Strokes, 1)
		assert.Len(t, d.Strokes[0], 5)
		assert.Equal(t, 4.0, d.Length)
		assert.InDelta(t, 1, d.Bounds.Width(), 1e-9)
		assert.InDelta(t, 1, d.Bounds.Height(), 1e-9)
	})

	t.Run("branches are separate strokes", func(t *testing.T) {
		t.Parallel()
		d := Turtle("F[+F]F", 90, 0)
		require.Len(t, d.Strokes, 2)
		assert.Len(t, d.Strokes[0], 3) // 0 -> F -> +F
		assert.Len(t, d.Strokes[1], 2) // 復元位置からF
		assert.Equal(t, 3.0, d.Length)
	})

	t.Run("unbalanced pop is ignored", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { Turtle("]]F", 60, 0) })
	})

	t.Run("move without drawing", func(t *testing.T) {
		t.Parallel()
		d := Turtle("FfF", 0, 0)
		assert.Len(t, d.Strokes, 2)
		assert.Equal(t, 2.0, d.Length)
	})
}

func TestFit(t *testing.T) {
	t.Parallel()

	var b Box
	b.Extend(Pt(-10, 0))
	b.Extend(Pt(10, 5))
	f := Fit(b, 80, 0.9)
	assert.InDelta(t, 0.9*80/20, f.Scale, 1e-9)

	c := f.Apply(Pt(0, 2.5))
	assert.InDelta(t, 40, c.X, 1e-9)
	assert.InDelta(t, 40, c.Y, 1e-9)

	var line Box
	line.Extend(Pt(0, 0))
	line.Extend(Pt(0, 4))
	assert.InDelta(t, 20, Fit(line, 80, 1).Scale, 1e-9)

	assert.Equal(t, 1.0, Fit(Box{}, 80, 1).Scale)
}

func TestStrokeForCoverage(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.64, StrokeForCoverage(1000, 6400, 0.1, 0.1, 3), 1e-9)
	assert.Equal(t, 3.0, StrokeForCoverage(10, 6400, 0.1, 0.1, 3))
	assert.Equal(t, 0.1, StrokeForCoverage(1e7, 6400, 0.1, 0.1, 3))
	assert.Equal(t, 3.0, StrokeForCoverage(0, 6400, 0.1, 0.1, 3))
}
