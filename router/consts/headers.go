package consts

const (
	HeaderCacheControl   = "Cache-Control"
	HeaderETag           = "ETag"
	HeaderIfNoneMatch    = "If-None-Match"
	HeaderVersion        = "X-AVATARS-VERSION"
	HeaderAvatarCache    = "X-Avatar-Cache"
	HeaderAvatarFallback = "X-Avatar-Fallback"
	HeaderAvatarBlurHash = "X-Avatar-Blurhash"
	HeaderAvatarKey      = "X-Avatar-Key"
)
