package logging

import (
	"io"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar     = zap.NewNop().Sugar()
	debugMode bool
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file at debug level and the stdlib
// logger is redirected into it.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		sugar = zap.NewNop().Sugar()
		debugMode = false
		return func() {}, nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{filename}
	cfg.ErrorOutputPaths = []string{filename}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	restoreStd := zap.RedirectStdLog(logger)
	prev := sugar
	sugar = logger.Sugar()
	debugMode = true

	cleanup = func() {
		_ = logger.Sync()
		restoreStd()
		sugar = prev
		debugMode = false
	}
	return cleanup, nil
}

// IsDebugMode reports whether a log file is active.
func IsDebugMode() bool { return debugMode }

func Debug(msg string) { sugar.Debug(msg) }
func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }
func Infof(format string, args ...any) { sugar.Infof(format, args...) }
func Warnf(format string, args ...any) { sugar.Warnf(format, args...) }
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }
