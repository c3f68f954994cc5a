package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config ロガーの設定
type Config struct {
	// ServiceName serviceContextに載せるサービス名
	ServiceName string
	// Version serviceContextに載せるバージョン
	Version string
	// Level 出力する最低のレベル。空の場合は本番でinfo、開発でdebug
	Level string
	// Development コンソール向けの出力にするかどうか
	Development bool
}

// New ロガーを生成します
//
// 本番用はCloud Logging形式のJSONを標準出力に書き出します。
func New(c Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Development {
		level = zapcore.DebugLevel
	}
	if len(c.Level) > 0 {
		l, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}

	if c.Development {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    newEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	service := ServiceContext(c.ServiceName, c.Version)
	return cfg.Build(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &cloudCore{Core: core, service: service}
	}))
}
