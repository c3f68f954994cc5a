package logging

import (
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// HTTPRequest Cloud LoggingのhttpRequest Field
func HTTPRequest(p *HTTPPayload) zap.Field {
	return zap.Object("httpRequest", p)
}

// HTTPPayload httpRequestの内容
type HTTPPayload struct {
	RequestMethod string
	RequestURL    string
	// RequestSize 不明な場合は負
	RequestSize  int64
	Status       int
	ResponseSize int64
	UserAgent    string
	RemoteIP     string
	Referer      string
	Latency      time.Duration
	Protocol     string
	// CacheLookup アバターのキャッシュを参照したかどうか
	CacheLookup bool
	CacheHit    bool
}

func (p *HTTPPayload) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("requestMethod", p.RequestMethod)
	enc.AddString("requestUrl", p.RequestURL)
	if p.RequestSize >= 0 {
		enc.AddString("requestSize", strconv.FormatInt(p.RequestSize, 10))
	}
	enc.AddInt("status", p.Status)
	enc.AddString("responseSize", strconv.FormatInt(p.ResponseSize, 10))
	enc.AddString("userAgent", p.UserAgent)
	enc.AddString("remoteIp", p.RemoteIP)
	enc.AddString("referer", p.Referer)
	enc.AddString("latency", formatLatency(p.Latency))
	enc.AddString("protocol", p.Protocol)
	if p.CacheLookup {
		enc.AddBool("cacheLookup", true)
		enc.AddBool("cacheHit", p.CacheHit)
	}
	return nil
}

// formatLatency Durationの秒表記 (例: "0.012000000s")
func formatLatency(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 9, 64) + "s"
}
