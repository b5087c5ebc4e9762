package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FormatsAndCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := NewZap(zap.New(core))

	l := base.WithField("round", "r1").WithFields(map[string]interface{}{"seat": 2})
	l.Info("bid %d", 130)
	l.Warn("fallback partner %s", "g14")
	base.Debug("plain")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "bid 130", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "r1", ctx["round"])
	assert.EqualValues(t, 2, ctx["seat"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Empty(t, entries[2].ContextMap())

	assert.Equal(t, map[string]interface{}{"round": "r1", "seat": 2}, l.Fields())
	assert.Empty(t, base.Fields())
}

func TestZapLogger_FieldsAreCopied(t *testing.T) {
	l := Nop().WithField("a", 1)
	f := l.Fields()
	f["b"] = 2
	assert.Equal(t, map[string]interface{}{"a": 1}, l.Fields())
}

func TestNewZap_NilIsNop(t *testing.T) {
	l := NewZap(nil)
	assert.NotPanics(t, func() { l.Error("boom %v", 1) })
}
