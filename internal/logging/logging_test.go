package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_Stderr(t *testing.T) {
	var buf bytes.Buffer
	res := newLogger(Config{Level: "debug", Format: FormatJSON, Output: OutputStderr}, &buf)

	res.Logger.Debug().Str("k", "v").Msg("hello")

	assert.False(t, res.UsingFile)
	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	res := newLogger(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path}, &bytes.Buffer{})
	t.Cleanup(func() { _ = res.Close() })

	require.True(t, res.UsingFile)
	assert.Equal(t, path, res.FilePath)

	res.Logger.Info().Msg("to file")
	require.NoError(t, res.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLogger_FileFallback(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	var buf bytes.Buffer
	res := newLogger(Config{Output: OutputFile, File: filepath.Join(blocker, "app.log")}, &buf)

	assert.False(t, res.UsingFile)
	assert.True(t, res.FallbackUsed)
	assert.NotEmpty(t, res.FallbackReason)

	res.Logger.Info().Msg("still logged")
	assert.Contains(t, buf.String(), "still logged")
}

func TestTraceID(t *testing.T) {
	id := NewTraceID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx := ContextWithTraceID(context.Background(), id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
	assert.NotEqual(t, id, GetOrGenerateTraceID(context.Background()))
}

func TestFromContext_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := base.WithContext(ContextWithTraceID(context.Background(), "trace-1"))

	l := FromContext(ctx)
	l.Info().Msg("x")

	assert.Contains(t, buf.String(), `"trace_id":"trace-1"`)
}
