package router

// Config APIサーバー設定
type Config struct {
	// 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// Gzipped レスポンスをGzip圧縮するかどうか
	Gzipped bool
	// MaxSize 指定可能な最大の画像サイズ
	MaxSize int
	// AllowOrigins CORSで許可するオリジン。空の場合は全て許可します
	AllowOrigins []string
	// RateLimit IPアドレスごとの1秒あたりのリクエスト数上限。0以下で無効
	RateLimit float64
	// RateBurst レート制限のバースト数
	RateBurst int
}
