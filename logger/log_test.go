package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, "warn", GetLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, "debug", GetLevel())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, "debug", GetLevel())
}

func TestLoggerWritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer InitLogger("console")

	Infof("priced %d contracts", 3)
	Errorf("bad input: %v", "spot")
	Infow("metric", "name", "gamma", "value", 0.5)
	Warnf("only %d returns", 1)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
	assert.Equal(t, "only 1 returns", entries[3].Message)
	assert.Equal(t, "priced 3 contracts", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "gamma", entries[2].ContextMap()["name"])
}
