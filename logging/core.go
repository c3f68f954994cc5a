package logging

import (
	"maps"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cloudCore serviceContext, sourceLocation, エラー報告用のcontextを付与するCore
type cloudCore struct {
	zapcore.Core
	service zap.Field
	// bound Withで付与済みのキー
	bound map[string]struct{}
}

func (c *cloudCore) With(fields []zap.Field) zapcore.Core {
	bound := make(map[string]struct{}, len(c.bound)+len(fields))
	maps.Copy(bound, c.bound)
	for _, f := range fields {
		bound[f.Key] = struct{}{}
	}
	return &cloudCore{
		Core:    c.Core.With(fields),
		service: c.service,
		bound:   bound,
	}
}

func (c *cloudCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *cloudCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(ent, c.decorate(ent, fields))
}

// decorate 呼び出し側が既に付けたキーは上書きしません
func (c *cloudCore) decorate(ent zapcore.Entry, fields []zapcore.Field) []zapcore.Field {
	fields = c.appendMissing(fields, c.service)
	if !ent.Caller.Defined {
		return fields
	}
	fields = c.appendMissing(fields, SourceLocation(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true))
	if ent.Level >= zapcore.ErrorLevel {
		fields = c.appendMissing(fields, ErrorReport(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true))
	}
	return fields
}

func (c *cloudCore) appendMissing(fields []zapcore.Field, f zap.Field) []zapcore.Field {
	if _, ok := c.bound[f.Key]; ok {
		return fields
	}
	if lo.ContainsBy(fields, func(x zapcore.Field) bool { return x.Key == f.Key }) {
		return fields
	}
	return append(fields, f)
}
