package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png" // image.Decode用

	"github.com/bbrks/go-blurhash"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // image.Decode用
	"golang.org/x/sync/semaphore"
)

// blurHashSize BlurHash計算前に縮小するサイズ
const blurHashSize = 32

// Processor SVGのラスター変換器
type Processor interface {
	// Rasterize SVGをsize四方のformat形式の画像に変換します
	Rasterize(ctx context.Context, src []byte, size int, format Format) ([]byte, error)
	// BlurHash ラスター画像のBlurHashを計算します
	BlurHash(src []byte) (string, error)
	// Name 変換器の名前
	Name() string
}

type rasterizer interface {
	name() string
	rasterize(ctx context.Context, src []byte, size int, format Format) ([]byte, error)
}

type defaultProcessor struct {
	c  Config
	sp *semaphore.Weighted
	r  rasterizer
}

// NewProcessor Processorを生成します
//
// c.ImageMagickPathが設定されている場合はImageMagickで、そうでなければプロセス内で変換します。
func NewProcessor(c Config) Processor {
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	var r rasterizer = inProcessRasterizer{}
	if len(c.ImageMagickPath) > 0 {
		r = imageMagickRasterizer{execPath: c.ImageMagickPath}
	}
	return &defaultProcessor{
		c:  c,
		sp: semaphore.NewWeighted(int64(c.Concurrency)),
		r:  r,
	}
}

func (p *defaultProcessor) Name() string {
	return p.r.name()
}

func (p *defaultProcessor) Rasterize(ctx context.Context, src []byte, size int, format Format) ([]byte, error) {
	if !format.Raster() {
		return nil, ErrUnsupportedFormat
	}
	if size <= 0 || (p.c.MaxSize > 0 && size > p.c.MaxSize) {
		return nil, ErrSizeLimitExceeded
	}

	if err := p.sp.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer p.sp.Release(1)

	return p.r.rasterize(ctx, src, size, format)
}

func (p *defaultProcessor) BlurHash(src []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// mks2013で縮小してから計算する
	thumb := imaging.Fit(img, blurHashSize, blurHashSize, mks2013Filter)
	hash, err := blurhash.Encode(4, 3, thumb)
	if err != nil {
		return "", fmt.Errorf("failed to encode blurhash: %w", err)
	}
	return hash, nil
}
