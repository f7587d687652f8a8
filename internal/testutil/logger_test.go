package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	logger, rec := NewRecorder()
	child := logger.With("run_id", "abc")

	logger.Debug("start")
	child.Warn("violations found", "violations", 2)

	assert.Equal(t, []string{"start", "violations found"}, rec.Messages(slog.LevelDebug))
	assert.Equal(t, []string{"violations found"}, rec.Messages(slog.LevelWarn))

	v, ok := rec.Attr("violations found", "run_id")
	require.True(t, ok)
	assert.Equal(t, "abc", v.String())

	v, ok = rec.Attr("violations found", "violations")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.Int64())

	_, ok = rec.Attr("start", "run_id")
	assert.False(t, ok)
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}
