package core

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/julien-sobczak/the-moodwriter/pkg/resync"
)

var (
	// Lazy-load and ensure a single read
	loggerOnce      resync.Once
	loggerSingleton *Logger
)

type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

func CurrentLogger() *Logger {
	loggerOnce.Do(func() {
		loggerSingleton = NewLogger()
	})
	return loggerSingleton
}

// Logger writes diagnostics on stderr. Warnings are always printed,
// other levels depend on the verbose flags passed to the CLI.
type Logger struct {
	verbose VerboseLevel
	level   zap.AtomicLevel
	sugar   *zap.SugaredLogger
}

func NewLogger() *Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "" // Keep the CLI output short
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return &Logger{
		verbose: VerboseOff,
		level:   level,
		sugar:   zap.New(core).Sugar(),
	}
}

// SetVerboseLevel overrides the default verbose level
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.verbose = level
	switch {
	case level >= VerboseDebug:
		l.level.SetLevel(zapcore.DebugLevel)
	case level == VerboseInfo:
		l.level.SetLevel(zapcore.InfoLevel)
	default:
		l.level.SetLevel(zapcore.WarnLevel)
	}
	return l
}

// VerboseLevel returns the current verbose level.
func (l *Logger) VerboseLevel() VerboseLevel {
	return l.verbose
}

// Sync flushes buffered entries. Call before exiting.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

func (l *Logger) Fatal(v ...any) {
	l.sugar.Fatal(v...)
}
func (l *Logger) Fatalf(format string, v ...any) {
	l.sugar.Fatalf(format, v...)
}

func (l *Logger) Warn(v ...any) {
	l.sugar.Warn(v...)
}
func (l *Logger) Warnf(format string, v ...any) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Info(v ...any) {
	l.sugar.Info(v...)
}
func (l *Logger) Infof(format string, v ...any) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Debug(v ...any) {
	l.sugar.Debug(v...)
}
func (l *Logger) Debugf(format string, v ...any) {
	l.sugar.Debugf(format, v...)
}

// Trace messages are printed at debug level but only with --vvv.
func (l *Logger) Trace(v ...any) {
	if l.verbose >= VerboseTrace {
		l.sugar.With("trace", true).Debug(v...)
	}
}
func (l *Logger) Tracef(format string, v ...any) {
	if l.verbose >= VerboseTrace {
		l.sugar.With("trace", true).Debugf(format, v...)
	}
}

// Debugw logs a message with structured key-value pairs.
func (l *Logger) Debugw(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}
