package imaging

import (
	"math"

	"github.com/disintegration/imaging"
)

// mks2013Support カーネルの半径
const mks2013Support = 2.5

// mks2013Filter BlurHash用の縮小フィルター (Magic Kernel Sharp 2013)
//
// http://johncostella.com/magic/
var mks2013Filter = imaging.ResampleFilter{
	Support: mks2013Support,
	Kernel:  magicKernelSharp,
}

// magicKernelSharp 区間ごとの2次式で定義された偶関数のカーネル
func magicKernelSharp(x float64) float64 {
	switch d := math.Abs(x); {
	case d < 0.5:
		return 17.0/16 - 7.0/4*d*d
	case d < 1.5:
		return (4*d*d - 11*d + 7) / 4
	case d < mks2013Support:
		return -(d - mks2013Support) * (d - mks2013Support) / 8
	default:
		return 0
	}
}
