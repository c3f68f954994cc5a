package consts

const (
	// KeyRendered アクセスログ用に生成結果を保持するキー
	KeyRendered = "rendered"
)
