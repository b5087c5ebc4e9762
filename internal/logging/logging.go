// Package logging adapts zap to the runtime.Logger interface used across the
// server, so the same code logs through Nakama or through a standalone zap core.
package logging

import (
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
	"go.uber.org/zap"
)

type zapLogger struct {
	l      *zap.Logger
	fields map[string]interface{}
}

// NewZap wraps l as a runtime.Logger. A nil l behaves like Nop.
func NewZap(l *zap.Logger) runtime.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &zapLogger{l: l, fields: map[string]interface{}{}}
}

// Nop returns a logger that discards everything.
func Nop() runtime.Logger {
	return NewZap(zap.NewNop())
}

func (z *zapLogger) Debug(format string, v ...interface{}) {
	z.l.Debug(fmt.Sprintf(format, v...))
}

func (z *zapLogger) Info(format string, v ...interface{}) {
	z.l.Info(fmt.Sprintf(format, v...))
}

func (z *zapLogger) Warn(format string, v ...interface{}) {
	z.l.Warn(fmt.Sprintf(format, v...))
}

func (z *zapLogger) Error(format string, v ...interface{}) {
	z.l.Error(fmt.Sprintf(format, v...))
}

func (z *zapLogger) WithField(key string, v interface{}) runtime.Logger {
	return z.WithFields(map[string]interface{}{key: v})
}

func (z *zapLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := make(map[string]interface{}, len(z.fields)+len(fields))
	for k, v := range z.fields {
		merged[k] = v
	}
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		merged[k] = v
		zf = append(zf, zap.Any(k, v))
	}
	return &zapLogger{l: z.l.With(zf...), fields: merged}
}

func (z *zapLogger) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(z.fields))
	for k, v := range z.fields {
		out[k] = v
	}
	return out
}
