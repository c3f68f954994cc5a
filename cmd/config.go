package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/traPtitech/avatars/router"
	"github.com/traPtitech/avatars/service/avatar"
	"github.com/traPtitech/avatars/service/imaging"
	"github.com/traPtitech/avatars/utils/storage"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`
	// LogLevel ログレベル。空の場合は開発モードでdebug、それ以外でinfo (default: "")
	LogLevel string `mapstructure:"logLevel" yaml:"logLevel"`

	// Port サーバーポート番号 (default: 3000)
	Port int `mapstructure:"port" yaml:"port"`
	// Gzip レスポンスのGZIP圧縮を有効にするかどうか (default: true)
	Gzip bool `mapstructure:"gzip" yaml:"gzip"`
	// ShutdownTimeout シャットダウンのタイムアウト秒数 (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`
	// AllowOrigins CORSで許可するオリジン (default: 全て許可)
	AllowOrigins []string `mapstructure:"allowOrigins" yaml:"allowOrigins"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// RateLimit レート制限設定
	RateLimit struct {
		// RPS IPアドレスごとの1秒あたりのリクエスト数上限。0で無効 (default: 0)
		RPS float64 `mapstructure:"rps" yaml:"rps"`
		// Burst バースト数 (default: 20)
		Burst int `mapstructure:"burst" yaml:"burst"`
	} `mapstructure:"rateLimit" yaml:"rateLimit"`

	// ImageMagick ImageMagick実行ファイルパス。空の場合はプロセス内で変換します
	ImageMagick string `mapstructure:"imagemagick" yaml:"imagemagick"`

	// Imaging 画像処理設定
	Imaging struct {
		// Concurrency 処理並列数 (default: 2)
		Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
		// MaxSize 出力可能な最大の一辺の画素数 (default: 1024)
		MaxSize int `mapstructure:"maxSize" yaml:"maxSize"`
		// BlurHash ラスター画像のBlurHashを返すかどうか (default: true)
		BlurHash bool `mapstructure:"blurhash" yaml:"blurhash"`
	} `mapstructure:"imaging" yaml:"imaging"`

	// Cache メモリキャッシュ設定
	Cache struct {
		// FreshFor 新鮮とみなす秒数 (default: 3600)
		FreshFor int `mapstructure:"freshFor" yaml:"freshFor"`
		// TTL 保持する秒数 (default: 86400)
		TTL int `mapstructure:"ttl" yaml:"ttl"`
		// Size 最大エントリ数 (default: 1024)
		Size int `mapstructure:"size" yaml:"size"`
	} `mapstructure:"cache" yaml:"cache"`

	// Storage ファイルストレージ設定
	Storage struct {
		// Type ストレージタイプ (default: local)
		// 	local: ローカルストレージ
		// 	memory: インメモリストレージ
		// 	s3: S3互換オブジェクトストレージ
		// 	swift: Swiftオブジェクトストレージ
		// 	composite: ローカルとリモートの複合ストレージ
		Type string `mapstructure:"type" yaml:"type"`

		// Local ローカルストレージ設定
		Local struct {
			// Dir 保存先ディレクトリ (default: ./storage)
			Dir string `mapstructure:"dir" yaml:"dir"`
		} `mapstructure:"local" yaml:"local"`

		// Composite 複合ストレージ設定
		Composite struct {
			// Remote リモートのストレージタイプ s3 or swift (default: swift)
			Remote string `mapstructure:"remote" yaml:"remote"`
		} `mapstructure:"composite" yaml:"composite"`

		// S3 S3互換オブジェクトストレージ設定
		S3 struct {
			// Bucket バケット名
			Bucket string `mapstructure:"bucket" yaml:"bucket"`
			// Region リージョン
			Region string `mapstructure:"region" yaml:"region"`
			// Endpoint エンドポイント
			Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
			// AccessKey アクセスキー
			AccessKey string `mapstructure:"accessKey" yaml:"accessKey"`
			// SecretKey シークレットキー
			SecretKey string `mapstructure:"secretKey" yaml:"secretKey"`
			// ForcePathStyle パス形式のURLを使うかどうか
			ForcePathStyle bool `mapstructure:"forcePathStyle" yaml:"forcePathStyle"`
		} `mapstructure:"s3" yaml:"s3"`

		// Swift Swiftオブジェクトストレージ設定
		Swift struct {
			// UserName ユーザー名
			UserName string `mapstructure:"username" yaml:"username"`
			// APIKey APIキー(パスワード)
			APIKey string `mapstructure:"apiKey" yaml:"apiKey"`
			// TenantName テナント名
			TenantName string `mapstructure:"tenantName" yaml:"tenantName"`
			// TenantID テナントID
			TenantID string `mapstructure:"tenantId" yaml:"tenantId"`
			// Container コンテナ名
			Container string `mapstructure:"container" yaml:"container"`
			// AuthURL 認証エンドポイント
			AuthURL string `mapstructure:"authUrl" yaml:"authUrl"`
		} `mapstructure:"swift" yaml:"swift"`
	} `mapstructure:"storage" yaml:"storage"`
}

func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("logLevel", "")
	viper.SetDefault("port", 3000)
	viper.SetDefault("gzip", true)
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("allowOrigins", []string{})
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("rateLimit.rps", 0)
	viper.SetDefault("rateLimit.burst", 20)
	viper.SetDefault("imagemagick", "")
	viper.SetDefault("imaging.concurrency", 2)
	viper.SetDefault("imaging.maxSize", 1024)
	viper.SetDefault("imaging.blurhash", true)
	viper.SetDefault("cache.freshFor", 60*60)
	viper.SetDefault("cache.ttl", 60*60*24)
	viper.SetDefault("cache.size", 1024)
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.local.dir", "./storage")
	viper.SetDefault("storage.composite.remote", "swift")
	viper.SetDefault("storage.s3.bucket", "")
	viper.SetDefault("storage.s3.region", "")
	viper.SetDefault("storage.s3.endpoint", "")
	viper.SetDefault("storage.s3.accessKey", "")
	viper.SetDefault("storage.s3.secretKey", "")
	viper.SetDefault("storage.s3.forcePathStyle", false)
	viper.SetDefault("storage.swift.username", "")
	viper.SetDefault("storage.swift.apiKey", "")
	viper.SetDefault("storage.swift.tenantName", "")
	viper.SetDefault("storage.swift.tenantId", "")
	viper.SetDefault("storage.swift.container", "")
	viper.SetDefault("storage.swift.authUrl", "")
}

func (c Config) getFileStorage(ctx context.Context) (storage.FileStorage, error) {
	switch c.Storage.Type {
	case "memory":
		return storage.NewInMemoryFileStorage(), nil
	case "s3", "swift":
		return c.getRemoteFileStorage(ctx, c.Storage.Type)
	case "composite":
		remote, err := c.getRemoteFileStorage(ctx, c.Storage.Composite.Remote)
		if err != nil {
			return nil, err
		}
		return storage.NewCompositeFileStorage(c.Storage.Local.Dir, remote)
	case "local", "":
		return storage.NewLocalFileStorage(c.Storage.Local.Dir)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", c.Storage.Type)
	}
}

func (c Config) getRemoteFileStorage(ctx context.Context, typ string) (storage.FileStorage, error) {
	switch typ {
	case "s3":
		return storage.NewS3FileStorage(ctx, storage.S3Config{
			Bucket:         c.Storage.S3.Bucket,
			Region:         c.Storage.S3.Region,
			Endpoint:       c.Storage.S3.Endpoint,
			AccessKey:      c.Storage.S3.AccessKey,
			SecretKey:      c.Storage.S3.SecretKey,
			ForcePathStyle: c.Storage.S3.ForcePathStyle,
		})
	case "swift":
		return storage.NewSwiftFileStorage(ctx, storage.SwiftConfig{
			Container:  c.Storage.Swift.Container,
			UserName:   c.Storage.Swift.UserName,
			APIKey:     c.Storage.Swift.APIKey,
			TenantName: c.Storage.Swift.TenantName,
			TenantID:   c.Storage.Swift.TenantID,
			AuthURL:    c.Storage.Swift.AuthURL,
		})
	default:
		return nil, fmt.Errorf("unknown remote storage type: %s", typ)
	}
}

func provideImageProcessorConfig(c *Config) imaging.Config {
	return imaging.Config{
		ImageMagickPath: c.ImageMagick,
		Concurrency:     c.Imaging.Concurrency,
		MaxSize:         c.Imaging.MaxSize,
		BlurHash:        c.Imaging.BlurHash,
	}
}

func provideAvatarConfig(c *Config) avatar.Config {
	return avatar.Config{
		FreshFor:  time.Duration(c.Cache.FreshFor) * time.Second,
		TTL:       time.Duration(c.Cache.TTL) * time.Second,
		CacheSize: c.Cache.Size,
		BlurHash:  c.Imaging.BlurHash,
	}
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:   c.DevMode,
		Version:       Version,
		Revision:      Revision,
		AccessLogging: c.AccessLog.Enabled,
		Gzipped:       c.Gzip,
		MaxSize:       c.Imaging.MaxSize,
		AllowOrigins:  c.AllowOrigins,
		RateLimit:     c.RateLimit.RPS,
		RateBurst:     c.RateLimit.Burst,
	}
}
