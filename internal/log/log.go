// Package log builds the logrus loggers used by the CLI and the self-test harness.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = logrus.WarnLevel

// Logger is a module logger: a logrus entry carrying a "name" field.
type Logger struct {
	*logrus.Entry
}

// Config controls logger construction.
type Config struct {
	// Level is a logrus level name such as "debug" or "warn". Empty means DefaultLevel.
	Level string
	// Output receives text-formatted entries. Nil means os.Stderr.
	Output io.Writer
	// File, if set, additionally receives warn and higher entries as JSON
	// through an lfshook file hook.
	File string
}

// NewLogger creates a logger for the named module.
func NewLogger(module string, cfg Config) (*Logger, error) {
	level := DefaultLevel
	if cfg.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = lvl
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: false,
	})

	if cfg.File != "" {
		if err := AddFileHook(base, cfg.File); err != nil {
			return nil, err
		}
	}

	return &Logger{base.WithField("name", module)}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)

	return &Logger{logrus.NewEntry(base)}
}

// AddFileHook routes warn, error and fatal entries of logger to path as JSON lines.
//
// lfshook opens the file lazily on each write, so path is opened for append
// here first to surface a bad path at startup.
func AddFileHook(logger *logrus.Logger, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("log file: %w", err)
	}

	pathMap := lfshook.PathMap{
		logrus.WarnLevel:  path,
		logrus.ErrorLevel: path,
		logrus.FatalLevel: path,
		logrus.PanicLevel: path,
	}
	hook := lfshook.NewHook(
		pathMap,
		&logrus.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.AddHook(hook)

	return nil
}
