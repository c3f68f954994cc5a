package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestHTTPPayload_MarshalLogObject(t *testing.T) {
	t.Parallel()

	t.Run("avatar response", func(t *testing.T) {
		t.Parallel()
		p := &HTTPPayload{
			RequestMethod: "GET",
			RequestURL:    "/api/v1/avatar?name=Alice",
			RequestSize:   0,
			Status:        200,
			ResponseSize:  2222,
			UserAgent:     "Test",
			RemoteIP:      "127.0.0.1",
			Referer:       "/",
			Latency:       12 * time.Millisecond,
			Protocol:      "HTTP/1.1",
			CacheLookup:   true,
			CacheHit:      true,
		}
		assert.Equal(t, p, HTTPRequest(p).Interface)

		enc := zapcore.NewMapObjectEncoder()
		if assert.NoError(t, p.MarshalLogObject(enc)) {
			assert.EqualValues(t, "GET", enc.Fields["requestMethod"])
			assert.EqualValues(t, p.RequestURL, enc.Fields["requestUrl"])
			assert.EqualValues(t, "0", enc.Fields["requestSize"])
			assert.EqualValues(t, 200, enc.Fields["status"])
			assert.EqualValues(t, "2222", enc.Fields["responseSize"])
			assert.EqualValues(t, "0.012000000s", enc.Fields["latency"])
			assert.EqualValues(t, true, enc.Fields["cacheLookup"])
			assert.EqualValues(t, true, enc.Fields["cacheHit"])
		}
	})

	t.Run("unknown size without cache", func(t *testing.T) {
		t.Parallel()
		p := &HTTPPayload{RequestSize: -1}
		enc := zapcore.NewMapObjectEncoder()
		if assert.NoError(t, p.MarshalLogObject(enc)) {
			assert.NotContains(t, enc.Fields, "requestSize")
			assert.NotContains(t, enc.Fields, "cacheLookup")
			assert.NotContains(t, enc.Fields, "cacheHit")
		}
	})
}
