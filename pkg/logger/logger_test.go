package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"unitconv/pkg/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		opts        []logger.Option
		debug       bool
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
			debug:       true,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
			debug:       false,
		},
		{
			name:        "Production Environment with debug level",
			environment: logger.ProductionEnvironment,
			opts:        []logger.Option{logger.WithLevel(zapcore.DebugLevel)},
			debug:       true,
		},
		{
			name:        "Unknown Environment falls back to development",
			environment: "staging",
			debug:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment, tt.opts...)
			})

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	l := logger.Get(ctx)
	require.NotNil(t, l, "Should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	ctxWithLogger := logger.WithLogger(ctx, customLogger)
	require.Equal(t, customLogger, logger.Get(ctxWithLogger), "Should return logger from context")
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("kind", "distance"), zap.Int("attempt", 1))
	logger.Info(ctx, "parsed")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "parsed", entries[0].Message)
	require.Equal(t, map[string]any{"kind": "distance", "attempt": int64(1)}, entries[0].ContextMap())
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message", zap.String("key", "value"))
	logger.Info(ctx, "info message", zap.String("key", "value"))
	logger.Warn(ctx, "warn message", zap.String("key", "value"))
	logger.Error(ctx, "error message", zap.String("key", "value"))

	levels := make([]zapcore.Level, 0, logs.Len())
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestStdLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	std := logger.StdLogger(ctx, slog.LevelError)
	std.Print("http: TLS handshake error")

	require.Equal(t, 1, logs.FilterMessage("http: TLS handshake error").Len())
	require.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}
