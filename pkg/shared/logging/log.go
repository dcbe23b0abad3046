package logging

import (
	"context"

	zap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scode/hashdial/pkg/shared/util"
)

const (
	EnvDebug    = "HASHDIAL_DEBUG"
	EnvLogLevel = "HASHDIAL_LOG_LEVEL"
)

// NewLogger returns a new zap.SugaredLogger writing to stderr.
// stdout carries filtered records and must never receive log lines.
func NewLogger() *zap.SugaredLogger {
	var config zap.Config
	debugMode, debugErr := util.LookupEnvBoolOr(EnvDebug, false)
	if debugMode {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	var levelErr error
	if lvl := util.LookupEnvStringOr(EnvLogLevel, ""); lvl != "" {
		level, err := zap.ParseAtomicLevel(lvl)
		if err != nil {
			levelErr = err
		} else {
			config.Level = level
		}
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	sugar := logger.Named("hashdial").Sugar()
	if debugErr != nil {
		sugar.Warnw("Ignoring debug toggle", zap.Error(debugErr))
	}
	if levelErr != nil {
		sugar.Warnw("Ignoring log level", zap.String("env", EnvLogLevel), zap.Error(levelErr))
	}
	return sugar
}

type loggerKey struct{}

// WithLogger returns a copy of parent context in which the
// value associated with logger key is the supplied logger.
func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger in the context.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
		return logger
	}
	return NewLogger()
}
