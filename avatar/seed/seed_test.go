package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 3105},
		{"hello", 99162322},
		{"Alice", 63350368},
		{"Clara Barton", 645088871},
		{"John Doe", 1367319387},
		{"😀", 1772899},                      // サロゲートペア
		{"polygenelubricants", 2147483648}, // -2^31
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HashCode(tt.in))
			assert.Equal(t, HashCode(tt.in), HashCode(tt.in))
		})
	}

	t.Run("long name", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { HashCode(strings.Repeat("long name ", 100000)) })
	})
}

func TestDigit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Digit(12345, 0))
	assert.Equal(t, 4, Digit(12345, 1))
	assert.Equal(t, 1, Digit(12345, 4))
	assert.Equal(t, 0, Digit(12345, 9))
}

func TestBoolean(t *testing.T) {
	t.Parallel()

	assert.False(t, Boolean(12345, 0))
	assert.True(t, Boolean(12345, 1))
	assert.True(t, Boolean(12345, 7))
}

func TestUnit(t *testing.T) {
	t.Parallel()

	t.Run("plain modulus", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 5, Unit(12345, 10, 0))
		assert.Equal(t, 105, Unit(12345, 360, 0))
	})

	t.Run("sign flip", func(t *testing.T) {
		t.Parallel()
		// 1桁目は4(偶数)
		assert.Equal(t, -5, Unit(12345, 10, 1))
		// 2桁目は3(奇数)
		assert.Equal(t, 5, Unit(12345, 10, 2))
	})

	t.Run("zero range", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, Unit(12345, 0, 1))
	})
}

func TestSpreadUnit(t *testing.T) {
	t.Parallel()

	for n := uint64(0); n < 1000; n++ {
		v := SpreadUnit(n, 7, 0)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}

	// 連続するseedで全て同じ値にならない
	seen := map[int]bool{}
	for n := uint64(100); n < 120; n++ {
		seen[SpreadUnit(n, 5, 0)] = true
	}
	assert.Greater(t, len(seen), 2)

	assert.Equal(t, SpreadUnit(424242, 13, 0), SpreadUnit(424242, 13, 0))
	assert.LessOrEqual(t, SpreadUnit(12345, 13, 1), 0)
}

func TestChance(t *testing.T) {
	t.Parallel()

	hits := 0
	for n := uint64(0); n < 10000; n++ {
		if Chance(n, 20) {
			hits++
		}
	}
	assert.InDelta(t, 2000, hits, 300)
	assert.False(t, Chance(1, 0))
	assert.True(t, Chance(1, 100))
}

func TestBetween(t *testing.T) {
	t.Parallel()

	for n := uint64(0); n < 500; n++ {
		v := Between(n, -3, 3)
		assert.GreaterOrEqual(t, v, -3.0)
		assert.LessOrEqual(t, v, 3.0)
	}
}

func TestRandomColor(t *testing.T) {
	t.Parallel()

	p := []string{"#000", "#111", "#222"}
	assert.Equal(t, "#111", RandomColor(4, p, len(p)))
	assert.Equal(t, "#000", RandomColor(4, p, 2))
	assert.Equal(t, "", RandomColor(4, nil, 0))
	// rangeがpaletteより大きい場合は先頭
	assert.Equal(t, "#000", RandomColor(4, p, 5))
}

func TestGenerateID(t *testing.T) {
	t.Parallel()

	a := GenerateID("Alice", "mask")
	assert.Equal(t, a, GenerateID("Alice", "mask"))
	assert.NotEqual(t, a, GenerateID("Bob", "mask"))
	assert.NotEqual(t, a, GenerateID("Alice", "filter"))
	assert.True(t, strings.HasPrefix(a, "mask-"))
}
