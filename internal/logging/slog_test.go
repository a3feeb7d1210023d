package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("module", "hub", "tenant", "kaffeewerk").Info(context.Background(), "published", "collection", "gallery")

	out := buf.String()
	for _, want := range []string{"module=hub", "tenant=kaffeewerk", "collection=gallery", "msg=published"} {
		assert.Contains(t, out, want)
	}
}

func TestNewJSON_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(&buf, slog.LevelInfo)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestNewFile_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")

	log, closer, err := NewFile(path, slog.LevelDebug)
	require.NoError(t, err)
	log.Info(context.Background(), "first")
	require.NoError(t, closer.Close())

	log, closer, err = NewFile(path, slog.LevelDebug)
	require.NoError(t, err)
	log.Info(context.Background(), "second")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(b), "level=INFO"))
}

func TestNewFile_BadPath(t *testing.T) {
	_, _, err := NewFile(filepath.Join(t.TempDir(), "missing", "x.log"), slog.LevelInfo)
	require.Error(t, err)
}

func TestNewDiscard_DoesNotPanic(t *testing.T) {
	log := NewDiscard()
	ctx := context.TODO()
	log.Debug(ctx, "x")
	log.With("a", 1).Error(ctx, "y")
}
