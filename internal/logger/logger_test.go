package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zap.WarnLevel, parseLevel("warn"))
	assert.Equal(t, defaultLevel, parseLevel(""))
	assert.Equal(t, defaultLevel, parseLevel("verbose"))
}

func TestSetLevel(t *testing.T) {
	prev := Level.Level()
	defer Level.SetLevel(prev)

	SetLevel("error")
	assert.False(t, Instance.Desugar().Core().Enabled(zap.WarnLevel))
	assert.True(t, Instance.Desugar().Core().Enabled(zap.ErrorLevel))
}
