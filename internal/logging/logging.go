// Package logging builds the loggers used across the arcade.
//
// The interactive terminal owns stdout, so engine and game diagnostics go
// to a rotating log file through zap and lumberjack. Operator facing output
// (CLI warnings, the SSH server) uses charmbracelet/log on stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the file logger.
type Options struct {
	// Path of the log file. Empty disables file logging.
	Path string
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string

	MaxSizeMB  int // default 10
	MaxBackups int // default 3
	MaxAgeDays int // default 7
}

// DefaultPath returns ~/.arcade/logs/arcade.log.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "logs", "arcade.log")
}

// New creates a zap logger writing to a size-rotated file.
// An empty path returns a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	if opts.Path == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		lvl, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
		}
		level = lvl
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    orDefault(opts.MaxSizeMB, 10),
		MaxBackups: orDefault(opts.MaxBackups, 3),
		MaxAge:     orDefault(opts.MaxAgeDays, 7),
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), level)

	return zap.New(core, zap.AddCaller()), nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Console returns a timestamped stderr logger with the given prefix.
func Console(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// GooseLogger adapts a zap logger to goose's migration logger.
type GooseLogger struct {
	l *zap.SugaredLogger
}

// NewGooseLogger wraps l for goose.SetLogger.
func NewGooseLogger(l *zap.Logger) GooseLogger {
	return GooseLogger{l: l.Named("migrate").Sugar()}
}

// Printf logs a migration progress line at debug level.
func (g GooseLogger) Printf(format string, v ...interface{}) {
	g.l.Debugf(strings.TrimSuffix(format, "\n"), v...)
}

// Fatalf logs at error level. It does not exit: migration failures are
// returned to the caller as errors.
func (g GooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Errorf(strings.TrimSuffix(format, "\n"), v...)
}
