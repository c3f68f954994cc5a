package logging

import (
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceContextKey = "serviceContext"
	sourceLocationKey = "logging.googleapis.com/sourceLocation"
	reportContextKey  = "context"
)

// ServiceContext Cloud LoggingのserviceContext Field
func ServiceContext(name, version string) zap.Field {
	return zap.Object(serviceContextKey, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("service", name)
		enc.AddString("version", version)
		return nil
	}))
}

// SourceLocation ログの出力位置のField
func SourceLocation(pc uintptr, file string, line int, ok bool) zap.Field {
	loc := newLocation(pc, file, line, ok)
	if loc == nil {
		return zap.Skip()
	}
	return zap.Object(sourceLocationKey, (*sourceLocation)(loc))
}

// ErrorReport Error Reporting用のcontext Field
func ErrorReport(pc uintptr, file string, line int, ok bool) zap.Field {
	loc := newLocation(pc, file, line, ok)
	if loc == nil {
		return zap.Skip()
	}
	return zap.Object(reportContextKey, (*reportContext)(loc))
}

type location struct {
	File     string
	Line     int
	Function string
}

func newLocation(pc uintptr, file string, line int, ok bool) *location {
	if !ok {
		return nil
	}
	loc := &location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}

type sourceLocation location

func (l *sourceLocation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("file", l.File)
	enc.AddString("line", strconv.Itoa(l.Line))
	enc.AddString("function", l.Function)
	return nil
}

type reportContext location

func (c *reportContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return enc.AddObject("reportLocation", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("filePath", c.File)
		enc.AddInt("lineNumber", c.Line)
		enc.AddString("functionName", c.Function)
		return nil
	}))
}
