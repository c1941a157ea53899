package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minicat/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with attrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "minicat")),
		)

		log.Info("request processed", logger.Component("processor"), logger.StatusCode(404))

		out := buf.String()
		assert.Contains(t, out, `"msg":"request processed"`)
		assert.Contains(t, out, `"service":"minicat"`)
		assert.Contains(t, out, `"component":"processor"`)
		assert.Contains(t, out, `"status_code":404`)
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithLevel(slog.LevelWarn), logger.WithOutput(&buf))

		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("from config", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewFromConfig(logger.Config{Level: "debug", Format: "json"}, logger.WithOutput(&buf))

		log.Debug("sweep finished")
		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	})

	t.Run("production preset", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewFromConfig(logger.Config{}, logger.WithProduction("minicat"), logger.WithOutput(&buf))

		log.Debug("dropped")
		log.Info("started")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, `"service":"minicat"`)
		assert.Contains(t, out, `"env":"production"`)
	})

	t.Run("development preset", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewFromConfig(logger.Config{}, logger.WithDevelopment("minicat"), logger.WithOutput(&buf))

		log.Debug("sweep finished")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "env=development")
	})

	t.Run("config overrides preset", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewFromConfig(logger.Config{Level: "warn", Format: "text"},
			logger.WithProduction("minicat"), logger.WithOutput(&buf))

		log.Info("dropped")
		log.Warn("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "service=minicat")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("nil safe helpers", func(t *testing.T) {
		t.Parallel()
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
		assert.True(t, logger.UserAgent("").Equal(slog.Attr{}))
		assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
		assert.True(t, logger.SessionToken("").Equal(slog.Attr{}))
	})

	t.Run("error and group", func(t *testing.T) {
		t.Parallel()
		err := errors.New("write failed")
		assert.Equal(t, err, logger.Error(err).Value.Any())

		attr := logger.Group("session", logger.Count("removed", 2))
		require.Equal(t, slog.KindGroup, attr.Value.Kind())
		g := attr.Value.Group()
		require.Len(t, g, 1)
		assert.Equal(t, "removed", g[0].Key)
		assert.Equal(t, int64(2), g[0].Value.Int64())
	})

	t.Run("session token is shortened", func(t *testing.T) {
		t.Parallel()
		attr := logger.SessionToken("0123456789ABCDEF0123456789ABCDEF")
		assert.Equal(t, "session", attr.Key)
		assert.Equal(t, "01234567...", attr.Value.String())
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	ctx := logger.WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", logger.RequestIDFrom(ctx))
	assert.Empty(t, logger.RequestIDFrom(context.Background()))
}
