package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestRenderPayload_MarshalLogObject(t *testing.T) {
	t.Parallel()

	p := &RenderPayload{
		Variant:  "beam",
		Format:   "png",
		Key:      "0123456789abcdef.png",
		Cached:   true,
		Fallback: false,
	}
	assert.Equal(t, p, Render(p).Interface.(*RenderPayload))

	enc := zapcore.NewMapObjectEncoder()
	if assert.NoError(t, p.MarshalLogObject(enc)) {
		assert.EqualValues(t, "beam", enc.Fields["variant"])
		assert.EqualValues(t, "png", enc.Fields["format"])
		assert.EqualValues(t, p.Key, enc.Fields["key"])
		assert.EqualValues(t, true, enc.Fields["cached"])
		assert.EqualValues(t, false, enc.Fields["fallback"])
	}
}
