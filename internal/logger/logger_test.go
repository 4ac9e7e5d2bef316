package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	log.Info("frame", "index", 3)

	out := buf.String()
	assert.Contains(t, out, `"msg":"frame"`)
	assert.Contains(t, out, `"index":3`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Debug("hidden too")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelDebug).With("file", "a.sbec").WithGroup("msg")
	log.Debug("decoded", "template", 1)
	assert.Contains(t, buf.String(), "file=a.sbec")
	assert.Contains(t, buf.String(), "msg.template=1")
}

func TestOpen(t *testing.T) {
	var buf bytes.Buffer
	Open(&buf, "JSON", "debug").Debug("x")
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)

	buf.Reset()
	Open(&buf, "text", "error").Warn("x")
	assert.Zero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelInfo)
	ctx := WithContext(context.Background(), log)
	require.Same(t, log, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
	Discard().Error("nothing")
}
