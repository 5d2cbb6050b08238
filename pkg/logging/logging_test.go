package logging_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/snxml/snxml/pkg/logging"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestGetLogger_ReturnsUsableLogger(t *testing.T) {
	logger := logging.GetLogger("validator")

	// Must not panic and must accept events at any level.
	logger.Debug().Str("k", "v").Msg("debug probe")
	logger.Info().Msg("info probe")
}

func TestLogOperationStart_ReturnsCompletionFunc(t *testing.T) {
	logger := logging.GetLogger("test")
	done := logging.LogOperationStart(logger, "format")

	assert.NotPanics(t, func() { done() })
}
