// Package logging owns the application's root zap logger and carries loggers
// through contexts.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

var rootLogger = zap.NewNop()

// Init builds the root logger. In dev mode it logs human-readable lines to
// stdout; otherwise JSON lines to stderr. level is one of debug, info, warn
// or error.
func Init(devmode bool, level string) (*zap.Logger, error) {
	var out io.Writer = os.Stderr
	if devmode {
		out = os.Stdout
	}
	l, err := New(out, devmode, level)
	if err != nil {
		return nil, err
	}
	rootLogger = l
	rootLogger.With(zap.Bool("devmode", devmode)).Info("Logging initialized")
	return rootLogger, nil
}

// New builds a logger writing to out without touching the root logger.
func New(out io.Writer, devmode bool, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	filter := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= lvl
	})

	var encoder zapcore.Encoder
	if devmode {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), filter)
	return zap.New(core), nil
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l := ctx.Value(loggerKey)
	if l == nil {
		return rootLogger
	}
	return l.(*zap.Logger)
}

// SubFrom returns a named child of the context's logger and a context
// carrying it.
func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

// Context returns a copy of ctx carrying logger.
func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = rootLogger
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromWithFields returns the context's logger with fields added and a context
// carrying it.
func FromWithFields(ctx context.Context, fields ...zapcore.Field) (*zap.Logger, context.Context) {
	logger := From(ctx).With(fields...)
	ctx = Context(ctx, logger)
	return logger, ctx
}
