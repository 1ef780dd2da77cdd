package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

// errorFile is the LOG_ERROR_FILE handle behind L, nil when none is set.
var errorFile *os.File

func init() {
	var err error
	L, _, err = build(zapcore.InfoLevel, "")
	if err != nil {
		panic(err)
	}
}

// Configure replaces L with a logger at the given level. When errorFilePath
// is set, error-level records are also appended to that file. The error file
// of the replaced logger is closed.
func Configure(level string, errorFilePath string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	l, f, err := build(lvl, errorFilePath)
	if err != nil {
		return err
	}

	_ = L.Sync()
	if errorFile != nil {
		_ = errorFile.Close()
	}
	L, errorFile = l, f
	return nil
}

func build(level zapcore.Level, errorFilePath string) (*zap.Logger, *os.File, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(level)

	opts := []zap.Option{zap.AddCallerSkip(1)}
	var f *os.File
	if errorFilePath != "" {
		var err error
		f, err = os.OpenFile(errorFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, err
		}
		fileCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(config.EncoderConfig),
			zapcore.AddSync(f),
			zapcore.ErrorLevel,
		)
		opts = append(opts, zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	l, err := config.Build(opts...)
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		return nil, nil, err
	}
	return l, f, nil
}

// WithComponent returns L tagged with a component field for handlers, services and middleware.
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}
