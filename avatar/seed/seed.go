// Package seed 名前文字列からアバター生成用の決定的な疑似乱数を導出します
package seed

import (
	"strconv"
	"unicode/utf16"
)

// spreadMul SpreadUnitで使うビット拡散用の奇数定数
const spreadMul uint32 = 0x45d9f3b

// HashCode 文字列の32bitローリングハッシュの絶対値を返します
//
// UTF-16コードユニット毎に hash = hash*31 + c を32bitの2の補数で計算します。
// 既存のアバターと互換性を保つため、この計算を変更してはいけません。
func HashCode(s string) uint32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		// -2^31 も 2^31 として扱う
		return uint32(-int64(h))
	}
	return uint32(h)
}

// Digit nの10進数でposition桁目(0が1の位)の数字を返します
func Digit(n uint64, position int) int {
	for range position {
		n /= 10
	}
	return int(n % 10)
}

// Boolean nのposition桁目が偶数かどうかを返します
func Boolean(n uint64, position int) bool {
	return Digit(n, position)%2 == 0
}

// Unit [0, rng)の値を返します
//
// signIndexが0より大きく、その桁が偶数の場合は符号を反転します。
// signIndexが0の場合は反転しません。
func Unit(n uint64, rng int, signIndex int) int {
	if rng <= 0 {
		return 0
	}
	v := int(n % uint64(rng))
	if signIndex > 0 && Digit(n, signIndex)%2 == 0 {
		return -v
	}
	return v
}

// SpreadUnit Unitと同様ですが、剰余を取る前にビットを拡散させます
//
// rngが小さい場合に、連続するseedから同じ値が周期的に出るのを避けるために使います。
func SpreadUnit(n uint64, rng int, signIndex int) int {
	if rng <= 0 {
		return 0
	}
	x := uint32(n) ^ uint32(n>>32)
	x ^= x >> 16
	x *= spreadMul
	x ^= x >> 16
	x *= spreadMul
	x ^= x >> 16
	v := int(x % uint32(rng))
	if signIndex > 0 && Digit(n, signIndex)%2 == 0 {
		return -v
	}
	return v
}

// Roll [0, 100)の値を返します。確率的な分岐に使います
func Roll(n uint64) int {
	return SpreadUnit(n, 100, 0)
}

// Chance percent%の確率でtrueを返します
func Chance(n uint64, percent int) bool {
	return Roll(n) < percent
}

// Float [0, 1)の値を返します
func Float(n uint64) float64 {
	return float64(SpreadUnit(n, 10000, 0)) / 10000
}

// Between [lo, hi]の範囲の浮動小数点数を返します
func Between(n uint64, lo, hi float64) float64 {
	return lo + (hi-lo)*Float(n)
}

// RandomColor palette[n mod rng]を返します
//
// rngが0以下もしくはpaletteが空の場合は空文字列を返します。
func RandomColor(n uint64, palette []string, rng int) string {
	if rng <= 0 || len(palette) == 0 {
		return ""
	}
	i := int(n % uint64(rng))
	if i >= len(palette) {
		i = 0
	}
	return palette[i]
}

// GenerateID name+suffixから決定的なSVG要素IDを生成します
func GenerateID(name, suffix string) string {
	return suffix + "-" + strconv.FormatUint(uint64(HashCode(name+suffix)), 36)
}
