package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("production writes json", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, "production", "info")

		log.Info().Str("path", "/health").Msg("request")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "info", line["level"])
		assert.Equal(t, "request", line["message"])
		assert.Equal(t, "/health", line["path"])
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, "production", "warn")

		log.Info().Msg("hidden")
		assert.Empty(t, buf.String())

		log.Warn().Msg("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		log := New(&bytes.Buffer{}, "production", "chatty")
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

		log = New(&bytes.Buffer{}, "production", "")
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})

	t.Run("development writes console output", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, "Development", "debug")

		log.Debug().Msg("hello")

		assert.Contains(t, buf.String(), "hello")
		assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})
}
