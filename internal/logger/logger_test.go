package logger_test

import (
	"bytes"
	"testing"

	"github.com/UnendingLoop/ValidateOutput/internal/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, logger.ParseLevel("debug"))
	require.Equal(t, zapcore.WarnLevel, logger.ParseLevel("WARN"))
	require.Equal(t, zapcore.ErrorLevel, logger.ParseLevel("Error"))
	require.Equal(t, zapcore.InfoLevel, logger.ParseLevel("whatever"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.InfoLevel)

	log.Debug("hidden")
	log.Info("shown")
	_ = log.Sync()

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "INFO")
}
