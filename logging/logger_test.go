package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		c       Config
		enabled zapcore.Level
		off     zapcore.Level
	}{
		{"production", Config{ServiceName: "avatars"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{"development", Config{Development: true}, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"explicit level", Config{Level: "warn"}, zapcore.WarnLevel, zapcore.InfoLevel},
		{"explicit dev level", Config{Level: "error", Development: true}, zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, err := New(tt.c)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.off))
		})
	}

	t.Run("bad level", func(t *testing.T) {
		t.Parallel()
		_, err := New(Config{Level: "loud"})
		assert.Error(t, err)
	})
}

func TestEncodeSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lvl  zapcore.Level
		want string
	}{
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.InfoLevel, "INFO"},
		{zapcore.WarnLevel, "WARNING"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DPanicLevel, "CRITICAL"},
		{zapcore.PanicLevel, "ALERT"},
		{zapcore.FatalLevel, "EMERGENCY"},
		{zapcore.Level(42), "DEFAULT"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			enc := zapcore.NewMapObjectEncoder()
			err := enc.AddArray("s", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
				encodeSeverity(tt.lvl, ae)
				return nil
			}))
			require.NoError(t, err)
			assert.Equal(t, []interface{}{tt.want}, enc.Fields["s"])
		})
	}
}
