package logger

import (
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "expense-explorer"

var global atomic.Pointer[zap.Logger]

// Init builds the process logger at level and installs it.
func Init(level string) error {
	l, err := New(level)
	if err != nil {
		return err
	}
	global.Store(l)
	return nil
}

// Get returns the process logger. Before Init it falls back to LOG_LEVEL.
func Get() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	l, err := New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		l = zap.NewNop()
	}
	global.CompareAndSwap(nil, l)
	return global.Load()
}

// Named returns a child of the process logger for one component.
func Named(component string) *zap.Logger {
	return Get().Named(component)
}

func Sync() {
	if l := global.Load(); l != nil {
		_ = l.Sync()
	}
}

// ParseLevel maps a level name to zap. Blank or unknown names mean info.
func ParseLevel(name string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// New builds a JSON logger with ISO8601 timestamps, tagged with the service name.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{"service": serviceName}
	return cfg.Build()
}
