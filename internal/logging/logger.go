// Package logging writes the planner's JSON log files.
//
// Every line carries the pid and command of the process. Lines about a
// gateway exchange or a flow also carry the fixed op, domain and request_id
// fields defined in fields.go, so one search can be followed from the view
// that submitted it down to the HTTP call.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/tether-travel/tether/internal/colors"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a logger that prefixes args to every line.
	With(args ...any) Logger
	// Shutdown closes the log file, if any.
	Shutdown() error
}

// sink is the state shared by a logger and every child made by With.
type sink struct {
	mu      sync.Mutex
	clogger *clog.Logger
	file    *os.File
	path    string
	scrub   *redactor
}

type fileLogger struct {
	sink *sink
	// base holds the pairs added by With, in the order they were added.
	base []any
}

// Init opens a fresh log file for cfg.Command and prunes old ones. A
// disabled configuration yields a logger that drops everything.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	dir, err := LogDir()
	if err != nil {
		return nil, fmt.Errorf("logging: log directory: %w", err)
	}
	if err := prune(dir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}
	path := logFilePath(dir, cfg, time.Now())
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	l := newFileLogger(f, cfg)
	l.sink.file = f
	l.sink.path = path
	return l, nil
}

// New returns a JSON logger writing to w at level.
func New(w io.Writer, level string) Logger {
	cfg := DefaultConfig()
	cfg.Level = level
	return newFileLogger(w, cfg)
}

func newFileLogger(w io.Writer, cfg Config) *fileLogger {
	cl := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
	})
	cl.SetFormatter(clog.JSONFormatter)
	cl = cl.With("pid", cfg.PID, "command", cfg.Command)
	return &fileLogger{sink: &sink{clogger: cl, scrub: newRedactor()}}
}

func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *fileLogger) Debug(msg string, args ...any) { l.write(clog.DebugLevel, msg, args) }
func (l *fileLogger) Info(msg string, args ...any)  { l.write(clog.InfoLevel, msg, args) }
func (l *fileLogger) Warn(msg string, args ...any)  { l.write(clog.WarnLevel, msg, args) }
func (l *fileLogger) Error(msg string, args ...any) { l.write(clog.ErrorLevel, msg, args) }

func (l *fileLogger) write(level clog.Level, msg string, args []any) {
	pairs := make([]any, 0, len(l.base)+len(args))
	pairs = append(pairs, l.base...)
	pairs = append(pairs, args...)
	pairs = l.sink.scrub.redact(pairs)

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.clogger.Log(level, msg, pairs...)
}

func (l *fileLogger) With(args ...any) Logger {
	if len(args)%2 == 1 {
		args = args[:len(args)-1]
	}
	base := make([]any, 0, len(l.base)+len(args))
	base = append(base, l.base...)
	base = append(base, args...)
	return &fileLogger{sink: l.sink, base: base}
}

func (l *fileLogger) Shutdown() error {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.file == nil {
		return nil
	}
	err := l.sink.file.Close()
	l.sink.file = nil
	return err
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

var (
	globalLogger     Logger
	globalLoggerOnce sync.Once
	globalLoggerMu   sync.RWMutex
)

// InitGlobal initializes the process logger from the loaded configuration.
// Only the first call has an effect.
func InitGlobal() error {
	var err error
	globalLoggerOnce.Do(func() {
		var l Logger
		l, err = Init(FromGlobalConfig())
		if err != nil {
			return
		}
		globalLoggerMu.Lock()
		globalLogger = l
		globalLoggerMu.Unlock()
		colors.SetLogger(l)
		if fl, ok := l.(*fileLogger); ok {
			colors.Debug("Logging to file:", fl.sink.path)
		}
	})
	return err
}

// GetGlobal returns the process logger, or one that drops everything
// before InitGlobal.
func GetGlobal() Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if globalLogger == nil {
		return noopLogger{}
	}
	return globalLogger
}

// Debug logs through the process logger.
func Debug(msg string, args ...any) {
	GetGlobal().Debug(msg, args...)
}

// Warn logs through the process logger.
func Warn(msg string, args ...any) {
	GetGlobal().Warn(msg, args...)
}

// With returns a child of the process logger.
func With(args ...any) Logger {
	return GetGlobal().With(args...)
}

// ShutdownGlobal closes the process log file.
func ShutdownGlobal() error {
	return GetGlobal().Shutdown()
}
