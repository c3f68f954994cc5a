package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Render アバター生成結果のField
func Render(p *RenderPayload) zap.Field {
	return zap.Object("avatar", p)
}

// RenderPayload アバター生成結果のログ
type RenderPayload struct {
	Variant  string `json:"variant"`
	Format   string `json:"format"`
	Key      string `json:"key"`
	Cached   bool   `json:"cached"`
	Fallback bool   `json:"fallback"`
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (p RenderPayload) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("variant", p.Variant)
	enc.AddString("format", p.Format)
	enc.AddString("key", p.Key)
	enc.AddBool("cached", p.Cached)
	enc.AddBool("fallback", p.Fallback)
	return nil
}
