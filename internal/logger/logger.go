// Package logger builds the zap logger used across the service and a few
// helpers for consistent structured fields.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FieldProvider is the log key for the generative model provider.
	FieldProvider = "ai_provider"
	// FieldModel is the log key for the generative model identifier.
	FieldModel = "ai_model"
	// FieldRequestID is the log key for the per-request identifier.
	FieldRequestID = "request_id"
)

// New returns a logger writing to stdout. json switches the console encoder
// for a JSON one; debug lowers the level from info to debug.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoding := "console"
	if json {
		encoding = "json"
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:   "msg",
			LevelKey:     "level",
			EncodeLevel:  zapcore.LowercaseLevelEncoder,
			TimeKey:      "time",
			EncodeTime:   zapcore.RFC3339TimeEncoder,
			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}

	return cfg.Build()
}

// WithAIFields attaches provider and model fields to l, skipping blank values.
// A nil logger is replaced by a no-op logger.
func WithAIFields(l *zap.Logger, provider, model string) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}

	fields := make([]zap.Field, 0, 2)
	if v := strings.TrimSpace(provider); v != "" {
		fields = append(fields, zap.String(FieldProvider, v))
	}
	if v := strings.TrimSpace(model); v != "" {
		fields = append(fields, zap.String(FieldModel, v))
	}
	if len(fields) == 0 {
		return l
	}

	return l.With(fields...)
}

// Preview shortens s to at most limit runes for logging, appending "..." when
// something was cut.
func Preview(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
