// Package logger provides timestamped console logging for diffwatch.
// Debug and info lines go to the output writer (stdout by default), warnings
// and errors to the error writer (stderr). Debug lines appear only when
// verbose mode is enabled via the --verbose flag.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// timeLayout matches the "Changes detected at" banner.
const timeLayout = "2006-01-02 15:04:05"

var (
	mu        sync.RWMutex
	verbose   bool
	output    io.Writer = os.Stdout
	errOutput io.Writer = os.Stderr
	sugar               = build(false, os.Stdout, os.Stderr)
)

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	sugar = build(verbose, output, errOutput)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for debug and info lines.
// Defaults to os.Stdout. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	sugar = build(verbose, output, errOutput)
}

// SetErrorOutput sets the writer for warning and error lines.
// Defaults to os.Stderr.
func SetErrorOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	errOutput = w
	sugar = build(verbose, output, errOutput)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

// Info prints an informational progress message.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Warn prints a warning message to the error writer.
func Warn(format string, args ...any) {
	current().Warnf(format, args...)
}

// Error prints an error message to the error writer.
func Error(format string, args ...any) {
	current().Errorf(format, args...)
}

// With returns a structured logger carrying the given key/value pairs.
// The returned logger keeps the configuration current at the time of the call.
func With(keysAndValues ...any) *zap.SugaredLogger {
	return current().With(keysAndValues...)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = current().Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func build(verbose bool, out, errOut io.Writer) *zap.SugaredLogger {
	minLevel := zapcore.InfoLevel
	if verbose {
		minLevel = zapcore.DebugLevel
	}

	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= minLevel && l < zapcore.WarnLevel
	})
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	})

	enc := zapcore.NewConsoleEncoder(encoderConfig())
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), low),
		zapcore.NewCore(enc.Clone(), zapcore.Lock(zapcore.AddSync(errOut)), high),
	)
	return zap.New(core).Sugar()
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}
