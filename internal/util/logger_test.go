package util

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level LogLevel
		want  zerolog.Level
	}{
		{TraceLevel, zerolog.TraceLevel},
		{DebugLevel, zerolog.DebugLevel},
		{InfoLevel, zerolog.InfoLevel},
		{WarnLevel, zerolog.WarnLevel},
		{ErrorLevel, zerolog.ErrorLevel},
		{42, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ZerologLevel(tt.level), "level %d", tt.level)
	}
}

// Not parallel: the logger is process-wide
func TestInitializeLogger(t *testing.T) {
	var buf bytes.Buffer
	InitializeLogger(WarnLevel, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	logger := GetLogger("Test")
	logger.Info().Msg("quiet message")
	logger.Warn().Str("key", "value").Msg("loud message")

	out := buf.String()
	assert.NotContains(t, out, "quiet message", "must drop records below the level")
	assert.Contains(t, out, "loud message")
	assert.Contains(t, out, "component=Test")
	assert.Contains(t, out, "key=value")
	assert.NotContains(t, out, "\x1b[", "must not color non-terminal output")
}
