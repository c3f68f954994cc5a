package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// inProcessRasterizer oksvgによるプロセス内の変換器
//
// マスクやフィルター、パターンは描画されません。PNGのみ出力できます。
type inProcessRasterizer struct{}

func (inProcessRasterizer) name() string {
	return "oksvg"
}

func (inProcessRasterizer) rasterize(_ context.Context, src []byte, size int, format Format) (b []byte, err error) {
	if format != FormatPNG {
		return nil, ErrUnsupportedFormat
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: recovered: %v", ErrInvalidSVG, p)
		}
	}()

	icon, err := oksvg.ReadIconStream(bytes.NewReader(src), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSVG, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
