package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockLogLevel int8 = 0

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	_, log := New(Options{Level: 0, Output: &buf})

	log.Info("menu event applied", "event", "next", "row", 1)
	log.V(1).Info("suppressed at info level")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "menu event applied", e[MessageKey])
	assert.Equal(t, "next", e["event"])
	assert.EqualValues(t, 1, e["row"])
	assert.Contains(t, e, TimeStampKey)
	assert.Contains(t, e, VersionKey)
	assert.Contains(t, e, CommitKey)
	assert.Contains(t, e, GoVersionKey)
}

func TestNewVerbosityFollowsLevel(t *testing.T) {
	var buf bytes.Buffer
	_, log := New(Options{Level: -2, Output: &buf})

	log.V(1).Info("one")
	log.V(2).Info("two")
	log.V(3).Info("three")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0][MessageKey])
	assert.Equal(t, "two", entries[1][MessageKey])
}

func TestNewConsoleEncoder(t *testing.T) {
	var buf bytes.Buffer
	_, log := New(Options{Output: &buf, Console: true})
	log.Info("hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, `"k": "v"`)
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	logger2 := Get(-1)
	require.NotNil(t, logger1)
	assert.Same(t, logger1, logger2)
}

func TestGetReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	Get(mockLogLevel)
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	assert.Same(t, &defaultNoopLogger, Get(mockLogLevel))
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)

	withLogger := WithLogger(ctx, logger)
	assert.Same(t, logger, withLogger.Value(loggerContextKey{}))
	assert.Equal(t, withLogger, WithLogger(withLogger, logger))

	other := logr.Discard()
	replaced := WithLogger(withLogger, &other)
	assert.Same(t, &other, replaced.Value(loggerContextKey{}))
}

func TestFromContext(t *testing.T) {
	global := Get(mockLogLevel)
	assert.Same(t, global, FromContext(context.Background()))

	other := logr.Discard()
	assert.Same(t, &other, FromContext(WithLogger(context.Background(), &other)))

	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()
	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
	assert.Same(t, &defaultNoopLogger, GetGlobalLogger())
}

func TestSyncDoesNotPanicWhenGlobalZapLoggerIsNil(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	assert.NotPanics(t, Sync)
}

func TestIsIgnorableSyncError(t *testing.T) {
	assert.True(t, isIgnorableSyncError(syscall.ENOTTY))
	assert.True(t, isIgnorableSyncError(syscall.EINVAL))
	assert.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}

func TestGetNoopLogger(t *testing.T) {
	logger := GetNoopLogger()
	assert.Same(t, &defaultNoopLogger, logger)
	assert.NotPanics(t, func() { logger.Info("This should do nothing") })
}

func TestWithValues(t *testing.T) {
	var buf bytes.Buffer
	_, base := New(Options{Output: &buf})

	withValues := WithValues(&base, RootCommandKey, "listmenu", SubCommandKey, "render")
	assert.NotSame(t, &base, withValues)
	withValues.Info("ran")
	base.Info("bare")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "render", entries[0][SubCommandKey])
	assert.NotContains(t, entries[1], SubCommandKey)

	var nilLogger *logr.Logger
	assert.Panics(t, func() { _ = WithValues(nilLogger, "key", "value") })
}
