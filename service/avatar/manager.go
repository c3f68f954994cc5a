package avatar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/motoki317/sc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	engine "github.com/traPtitech/avatars/avatar"
	"github.com/traPtitech/avatars/avatar/svg"
	"github.com/traPtitech/avatars/service/imaging"
	"github.com/traPtitech/avatars/utils/storage"
)

var (
	rendersCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "avatars",
		Name:      "renders_total",
	}, []string{"variant", "format"})
	cacheCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "avatars",
		Name:      "render_cache_total",
	}, []string{"result"})
)

// Config Managerの設定
type Config struct {
	// FreshFor メモリキャッシュが新鮮とみなされる期間
	FreshFor time.Duration
	// TTL メモリキャッシュの保持期間
	TTL time.Duration
	// CacheSize メモリキャッシュの最大エントリ数
	CacheSize int
	// BlurHash ラスター画像にBlurHashを付けるかどうか
	BlurHash bool
}

// Rendered 生成結果
type Rendered struct {
	Data        []byte
	ContentType string
	Format      imaging.Format
	// Key ストレージのキー (<digest>.<ext>)
	Key string
	// ETag 引用符付きのETag
	ETag     string
	BlurHash string
	// Fallback ラスター変換に失敗してSVGを返したかどうか
	Fallback bool
	// Cached 新たに生成せずキャッシュから返したかどうか
	Cached bool
}

// Manager アバター生成のキャッシュ付きマネージャー
type Manager interface {
	// Render アバターを生成します
	//
	// ラスター変換に失敗した場合はエラーにならず、SVGをFallback=trueで返します。この結果はキャッシュされません。
	Render(ctx context.Context, o engine.Options, f imaging.Format) (*Rendered, error)
	// Forget 指定した生成結果をメモリキャッシュとストレージから削除します
	Forget(ctx context.Context, o engine.Options, f imaging.Format) error
}

type entry struct {
	data     []byte
	blurHash string
	// claimed 最初の取得者がtrueにする。以降の取得はキャッシュヒット扱い
	claimed atomic.Bool
}

type fallbackError struct {
	svg []byte
	err error
}

func (e *fallbackError) Error() string {
	return fmt.Sprintf("rasterization failed: %v", e.err)
}

func (e *fallbackError) Unwrap() error {
	return e.err
}

type manager struct {
	c  Config
	fs storage.FileStorage
	p  imaging.Processor
	l  *zap.Logger

	cache *sc.Cache[request, *entry]
}

// NewManager Managerを生成します
func NewManager(c Config, fs storage.FileStorage, p imaging.Processor, logger *zap.Logger) (Manager, error) {
	if c.FreshFor <= 0 {
		c.FreshFor = time.Hour
	}
	if c.TTL < c.FreshFor {
		c.TTL = c.FreshFor
	}
	if c.CacheSize <= 0 {
		c.CacheSize = 1024
	}
	m := &manager{
		c:  c,
		fs: fs,
		p:  p,
		l:  logger.Named("avatar"),
	}
	cache, err := sc.New(m.load, c.FreshFor, c.TTL, sc.With2QBackend(c.CacheSize))
	if err != nil {
		return nil, err
	}
	m.cache = cache
	return m, nil
}

func (m *manager) Render(ctx context.Context, o engine.Options, f imaging.Format) (*Rendered, error) {
	req := newRequest(o, f)
	key := req.storageKey()

	e, err := m.cache.Get(ctx, req)
	if err != nil {
		var fe *fallbackError
		if errors.As(err, &fe) {
			cacheCounter.WithLabelValues("fallback").Inc()
			m.l.Warn("falling back to svg", zap.String("key", key), zap.Error(fe.err))
			svgKey := req.digest() + "." + imaging.FormatSVG.Ext()
			return &Rendered{
				Data:        fe.svg,
				ContentType: imaging.FormatSVG.ContentType(),
				Format:      imaging.FormatSVG,
				Key:         svgKey,
				ETag:        etag(svgKey),
				Fallback:    true,
			}, nil
		}
		return nil, err
	}

	cached := !e.claimed.CompareAndSwap(false, true)
	if cached {
		cacheCounter.WithLabelValues("hit").Inc()
	} else {
		cacheCounter.WithLabelValues("miss").Inc()
	}
	return &Rendered{
		Data:        e.data,
		ContentType: f.ContentType(),
		Format:      f,
		Key:         key,
		ETag:        etag(key),
		BlurHash:    e.blurHash,
		Cached:      cached,
	}, nil
}

func (m *manager) Forget(ctx context.Context, o engine.Options, f imaging.Format) error {
	req := newRequest(o, f)
	m.cache.Forget(req)
	err := m.fs.DeleteByKey(ctx, req.storageKey())
	if err != nil && !errors.Is(err, storage.ErrFileNotFound) {
		return err
	}
	return nil
}

// load メモリキャッシュに無い場合にストレージから読むか生成します
func (m *manager) load(ctx context.Context, req request) (*entry, error) {
	key := req.storageKey()

	b, err := storage.ReadAll(ctx, m.fs, key)
	if err == nil {
		e := &entry{data: b, blurHash: m.blurHash(req.format, b)}
		e.claimed.Store(true)
		return e, nil
	}
	if !errors.Is(err, storage.ErrFileNotFound) {
		m.l.Warn("failed to read cached avatar", zap.String("key", key), zap.Error(err))
	}

	o := req.options()
	doc := engine.Render(o)
	data := svg.Bytes(doc)
	rendersCounter.WithLabelValues(o.Variant.String(), req.format.Ext()).Inc()

	if req.format.Raster() {
		raster, err := m.p.Rasterize(ctx, data, pixels(o.Size), req.format)
		if err != nil {
			return nil, &fallbackError{svg: data, err: err}
		}
		data = raster
	}

	if err := m.fs.SaveByKey(ctx, bytes.NewReader(data), key, req.format.ContentType()); err != nil {
		m.l.Warn("failed to save avatar", zap.String("key", key), zap.Error(err))
	}
	return &entry{data: data, blurHash: m.blurHash(req.format, data)}, nil
}

func (m *manager) blurHash(f imaging.Format, data []byte) string {
	if !m.c.BlurHash || !f.Raster() {
		return ""
	}
	hash, err := m.p.BlurHash(data)
	if err != nil {
		m.l.Warn("failed to calculate blurhash", zap.Error(err))
		return ""
	}
	return hash
}

func pixels(size float64) int {
	return max(1, int(math.Round(size)))
}

func etag(key string) string {
	return `"` + key + `"`
}
