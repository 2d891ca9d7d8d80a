// internal/observability/logger_test.go
package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/kinesra/simscene/internal/config"
)

// syncBuffer adapts a bytes.Buffer to zapcore.WriteSyncer so tests can
// observe logger output without touching stdout.
type syncBuffer struct {
	bytes.Buffer
}

func (b *syncBuffer) Sync() error { return nil }

func initTestLogger(t *testing.T, cfg config.LoggerConfig) *syncBuffer {
	t.Helper()
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf syncBuffer
	Initialize(cfg, zapcore.Lock(&buf))
	return &buf
}

func TestInitialize(t *testing.T) {
	t.Run("console format colorizes the level", func(t *testing.T) {
		buf := initTestLogger(t, config.LoggerConfig{
			Level: "debug", Format: "console", ServiceName: "simscene",
		})

		GetLogger().Info("hello")

		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, colorGreen)
		assert.Contains(t, out, "simscene.")
		assert.Contains(t, out, "hello")
	})

	t.Run("json format emits structured entries", func(t *testing.T) {
		buf := initTestLogger(t, config.LoggerConfig{
			Level: "info", Format: "json", ServiceName: "simscene",
		})

		GetLogger().Info("structured entry")

		line := strings.TrimSpace(buf.String())
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "structured entry", entry["msg"])
	})

	t.Run("an invalid level falls back to info", func(t *testing.T) {
		buf := initTestLogger(t, config.LoggerConfig{
			Level: "chatty", Format: "json", ServiceName: "simscene",
		})

		GetLogger().Debug("hidden")
		GetLogger().Info("visible")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "visible")
	})

	t.Run("initialization happens exactly once", func(t *testing.T) {
		buf := initTestLogger(t, config.LoggerConfig{
			Level: "info", Format: "json", ServiceName: "first",
		})

		var second syncBuffer
		Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "second"}, zapcore.Lock(&second))

		GetLogger().Info("routed")
		assert.Contains(t, buf.String(), "routed")
		assert.Empty(t, second.String())
	})
}

func TestGetLoggerBeforeInitialization(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	logger := GetLogger()
	require.NotNil(t, logger)
}
