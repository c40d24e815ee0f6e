package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// New builds a logger writing to stderr.
func New(level Level, format Format) (*zap.Logger, error) {
	config := &zap.Config{
		Development:       false,
		DisableStacktrace: true,
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	switch level {
	case LevelDebug:
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case LevelInfo:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case LevelWarn:
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case LevelError:
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case LevelFatal:
		config.Level = zap.NewAtomicLevelAt(zap.FatalLevel)
	default:
		return nil, fmt.Errorf("unexpected log level %s", level)
	}
	switch format {
	case FormatConsole:
		config.Encoding = "console"
	case FormatJSON:
		config.Encoding = "json"
	default:
		return nil, fmt.Errorf("unexpected log format %s", format)
	}
	return config.Build()
}

type loggerKey struct{}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger stored in ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}
