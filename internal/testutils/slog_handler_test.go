package testutils

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSlogHandler(t *testing.T) {
	logger, h := NewTestLogger()

	logger.With(slog.String("component", "test")).Info("first", slog.Int("n", 1))
	logger.Warn("second", slog.String("detail", "connection refused"))

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "test", entries[0]["component"])
	assert.EqualValues(t, 1, entries[0]["n"])
	assert.NotContains(t, entries[1], "component")

	assert.Len(t, h.Find("second"), 1)
	assert.True(t, h.Contains("refused"))
	assert.False(t, h.Contains("missing"))

	h.Clear()
	assert.Empty(t, h.Entries())
}
