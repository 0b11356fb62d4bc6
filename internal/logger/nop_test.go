package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maysay-D/grouping-tool/types"
)

func TestNopLogger_ImplementsInterface(t *testing.T) {
	var _ types.Logger = (*NopLogger)(nil)
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	log := NewNop()

	require.NotPanics(t, func() {
		log.Debug("debug", "key", "value")
		log.Info("info")
		log.Warn("warn", "count", 3)
		log.Error("error", "err", nil)
		log.Fatal("fatal does not exit")
	})
}
