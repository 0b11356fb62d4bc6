package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maysay-D/grouping-tool/types"
)

func TestSlogLogger_ImplementsInterface(t *testing.T) {
	var _ types.Logger = (*SlogLogger)(nil)
}

func TestNewSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := NewSlog(slog.New(handler))

	require.NotNil(t, log)

	log.Debug("debug message", "key", "value")
	log.Info("info message", "members", 3)
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	require.Contains(t, out, "debug message")
	require.Contains(t, out, "key=value")
	require.Contains(t, out, "members=3")
	require.Contains(t, out, "warn message")
	require.Contains(t, out, "error message")
}

func TestNewSlogDefault(t *testing.T) {
	log := NewSlogDefault()

	require.NotNil(t, log)
	require.NotNil(t, log.logger)
}
