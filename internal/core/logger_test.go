package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLoggerVerboseLevel(t *testing.T) {
	var tests = []struct {
		verbose VerboseLevel
		info    bool
		debug   bool
	}{
		{VerboseOff, false, false},
		{VerboseInfo, true, false},
		{VerboseDebug, true, true},
		{VerboseTrace, true, true},
	}
	for _, tt := range tests {
		l := NewLogger().SetVerboseLevel(tt.verbose)
		assert.Equal(t, tt.verbose, l.VerboseLevel())
		assert.True(t, l.level.Enabled(zapcore.WarnLevel))
		assert.Equal(t, tt.info, l.level.Enabled(zapcore.InfoLevel))
		assert.Equal(t, tt.debug, l.level.Enabled(zapcore.DebugLevel))
	}
}

func TestCurrentLogger(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	logger := CurrentLogger()
	assert.Same(t, logger, CurrentLogger())
	assert.Equal(t, VerboseOff, logger.VerboseLevel())
}
