package avatar

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/png"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	engine "github.com/traPtitech/avatars/avatar"
	"github.com/traPtitech/avatars/avatar/palette"
	"github.com/traPtitech/avatars/avatar/svg"
	"github.com/traPtitech/avatars/service/imaging"
	"github.com/traPtitech/avatars/utils/storage"
)

type countingProcessor struct {
	imaging.Processor
	calls atomic.Int32
	fail  bool
}

func (p *countingProcessor) Rasterize(ctx context.Context, src []byte, size int, f imaging.Format) ([]byte, error) {
	p.calls.Add(1)
	if p.fail {
		return nil, errors.New("rasterizer is broken")
	}
	return p.Processor.Rasterize(ctx, src, size, f)
}

func setup(t *testing.T, blurHash bool) (Manager, *storage.InMemoryFileStorage, *countingProcessor) {
	t.Helper()
	fs := storage.NewInMemoryFileStorage()
	p := &countingProcessor{Processor: imaging.NewProcessor(imaging.Config{Concurrency: 2, MaxSize: 1024})}
	m, err := NewManager(Config{BlurHash: blurHash}, fs, p, zap.NewNop())
	require.NoError(t, err)
	return m, fs, p
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	base := engine.Options{Name: "Alice", Variant: engine.Beam, Colors: palette.Default, Size: 80}

	assert.Len(t, CacheKey(base), 16)
	assert.Equal(t, CacheKey(base), CacheKey(base))
	assert.Equal(t, CacheKey(engine.Options{}), CacheKey(engine.Options{Name: engine.DefaultName, Size: engine.DefaultSize, Colors: palette.Default}))
	assert.Equal(t, CacheKey(base), CacheKey(engine.Options{Name: "Alice", Variant: engine.Beam, Colors: []string{"", "#92A1C6", "#146A7C", "#F0AB3D", "#C271B4", "#C20D90"}}))

	for _, o := range []engine.Options{
		base.WithName("Bob"),
		{Name: "Alice", Variant: engine.Marble, Colors: palette.Default, Size: 80},
		{Name: "Alice", Variant: engine.Beam, Colors: palette.Shadcn, Size: 80},
		{Name: "Alice", Variant: engine.Beam, Colors: palette.Default, Size: 81},
		{Name: "Alice", Variant: engine.Beam, Colors: palette.Default, Size: 80, Title: true},
		{Name: "Alice", Variant: engine.Beam, Colors: palette.Default, Size: 80, Square: true},
	} {
		assert.NotEqual(t, CacheKey(base), CacheKey(o))
	}

	assert.True(t, strings.HasPrefix(StorageKey(base, imaging.FormatPNG), CacheKey(base)))
	assert.Equal(t, CacheKey(base)+".png", StorageKey(base, imaging.FormatPNG))
	assert.Equal(t, CacheKey(base)+".svg", StorageKey(base, imaging.FormatSVG))
}

func TestManager_RenderSVG(t *testing.T) {
	t.Parallel()
	m, fs, p := setup(t, true)
	ctx := context.Background()
	o := engine.Options{Name: "Alice", Variant: engine.Beam}

	r, err := m.Render(ctx, o, imaging.FormatSVG)
	require.NoError(t, err)
	assert.Equal(t, svg.Bytes(engine.Render(o)), r.Data)
	assert.Equal(t, "image/svg+xml", r.ContentType)
	assert.Equal(t, StorageKey(o, imaging.FormatSVG), r.Key)
	assert.Equal(t, `"`+r.Key+`"`, r.ETag)
	assert.Empty(t, r.BlurHash)
	assert.False(t, r.Cached)
	assert.False(t, r.Fallback)
	assert.EqualValues(t, 0, p.calls.Load())

	stored, err := storage.ReadAll(ctx, fs, r.Key)
	require.NoError(t, err)
	assert.Equal(t, r.Data, stored)

	again, err := m.Render(ctx, o, imaging.FormatSVG)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, r.Data, again.Data)
}

func TestManager_RenderPNG(t *testing.T) {
	t.Parallel()
	m, fs, p := setup(t, true)
	ctx := context.Background()
	o := engine.Options{Name: "Bob", Variant: engine.Pixel, Size: 48}

	r, err := m.Render(ctx, o, imaging.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, "image/png", r.ContentType)
	assert.False(t, r.Fallback)
	assert.NotEmpty(t, r.BlurHash)
	assert.EqualValues(t, 1, p.calls.Load())

	cfg, format, err := image.DecodeConfig(bytes.NewReader(r.Data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 48, cfg.Width)

	assert.Equal(t, 1, fs.Len())
	_, err = m.Render(ctx, o, imaging.FormatPNG)
	require.NoError(t, err)
	assert.EqualValues(t, 1, p.calls.Load())
}

func TestManager_Fallback(t *testing.T) {
	t.Parallel()
	m, fs, p := setup(t, true)
	ctx := context.Background()
	o := engine.Options{Name: "Carol", Variant: engine.Ring}

	// プロセス内の変換器はWebPを出力できない
	r, err := m.Render(ctx, o, imaging.FormatWebP)
	require.NoError(t, err)
	assert.True(t, r.Fallback)
	assert.False(t, r.Cached)
	assert.Equal(t, "image/svg+xml", r.ContentType)
	assert.Equal(t, imaging.FormatSVG, r.Format)
	assert.Equal(t, svg.Bytes(engine.Render(o)), r.Data)
	assert.True(t, strings.HasSuffix(r.Key, ".svg"))
	assert.Equal(t, 0, fs.Len())

	r, err = m.Render(ctx, o, imaging.FormatWebP)
	require.NoError(t, err)
	assert.True(t, r.Fallback)
	assert.EqualValues(t, 2, p.calls.Load())
}

func TestManager_BrokenRasterizer(t *testing.T) {
	t.Parallel()
	m, fs, p := setup(t, false)
	p.fail = true

	r, err := m.Render(context.Background(), engine.Options{Name: "Dave"}, imaging.FormatPNG)
	require.NoError(t, err)
	assert.True(t, r.Fallback)
	assert.Equal(t, 0, fs.Len())
}

func TestManager_StorageHit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := storage.NewInMemoryFileStorage()
	p := imaging.NewProcessor(imaging.Config{})
	o := engine.Options{Name: "Eve", Variant: engine.Fractal}

	m1, err := NewManager(Config{}, fs, p, zap.NewNop())
	require.NoError(t, err)
	first, err := m1.Render(ctx, o, imaging.FormatSVG)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	m2, err := NewManager(Config{}, fs, p, zap.NewNop())
	require.NoError(t, err)
	second, err := m2.Render(ctx, o, imaging.FormatSVG)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, first.ETag, second.ETag)
}

func TestManager_Coalescing(t *testing.T) {
	t.Parallel()
	m, _, p := setup(t, false)
	o := engine.Options{Name: "Frank", Variant: engine.Bauhaus, Size: 32}

	var (
		wg     sync.WaitGroup
		misses atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := m.Render(context.Background(), o, imaging.FormatPNG)
			if assert.NoError(t, err) && !r.Cached {
				misses.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, p.calls.Load())
	assert.EqualValues(t, 1, misses.Load())
}

func TestManager_Forget(t *testing.T) {
	t.Parallel()
	m, fs, _ := setup(t, false)
	ctx := context.Background()
	o := engine.Options{Name: "Grace"}

	r, err := m.Render(ctx, o, imaging.FormatSVG)
	require.NoError(t, err)
	require.Equal(t, 1, fs.Len())

	require.NoError(t, m.Forget(ctx, o, imaging.FormatSVG))
	assert.Equal(t, 0, fs.Len())
	require.NoError(t, m.Forget(ctx, o, imaging.FormatSVG))

	again, err := m.Render(ctx, o, imaging.FormatSVG)
	require.NoError(t, err)
	assert.False(t, again.Cached)
	assert.Equal(t, r.Data, again.Data)
}
