// Package logger writes jwtui's diagnostic log.
//
// The terminal belongs to the editor while it runs, so nothing is ever logged
// to stdout or stderr. Records go to a text file (DefaultLogPath unless Init
// is given another path) through log/slog, with a level that can be raised
// or lowered at runtime.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLogPath is where the log goes when Init is not called.
const DefaultLogPath = "/tmp/jwtui-debug.log"

// fallbackPath is what ensureInit opens; tests point it elsewhere.
var fallbackPath = DefaultLogPath

// logGlob matches every log file jwtui may have written.
const logGlob = "/tmp/jwtui-*.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	logFile  *os.File
	logPath  string
	levelVar = new(slog.LevelVar)
	debug    bool
)

// SetDebug switches between debug and info level. It can be called before
// or after Init.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	levelVar.Set(levelFor(enabled))
}

func levelFor(debugEnabled bool) slog.Level {
	if debugEnabled {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Init opens path for appending and routes all records there. Calling Init
// again after a successful call is a no-op; use Reset first to switch files.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		return nil
	}
	return open(path)
}

// open must be called with mu held.
func open(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	levelVar.Set(levelFor(debug))
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path)
	return nil
}

// ensureInit lazily opens DefaultLogPath. Must be called with mu held.
func ensureInit() {
	if base != nil {
		return
	}
	if err := open(fallbackPath); err != nil {
		// Nothing sensible to do: the TUI owns the terminal. Fall back to a
		// discarding logger so callers never see nil.
		base = slog.New(slog.DiscardHandler)
	}
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if !base.Enabled(context.Background(), level) {
		return
	}
	base.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs a printf-style message at debug level.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info logs a printf-style message at info level.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn logs a printf-style message at warn level.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error logs a printf-style message at error level.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// WithComponent returns a structured logger tagged with component.
//
//	log := logger.WithComponent("editor")
//	log.Debug("mode changed", "from", old, "to", mode)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	return base.With(slog.String("component", component))
}

// WithSession returns a structured logger tagged with a run id, so records
// from concurrent jwtui processes sharing a log file can be told apart.
func WithSession(sessionID string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	return base.With(slog.String("session", sessionID))
}

// Path returns the file currently being written, or "" before first use.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close closes the log file. Later calls reopen DefaultLogPath lazily.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
}

// Reset closes the log and restores the initial state. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
	logPath = ""
	debug = false
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes every jwtui log file in /tmp and reports how many were
// deleted.
func ClearLogs() (int, error) {
	return clearMatching(logGlob)
}

func clearMatching(pattern string) (int, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, path := range matches {
		if err := os.Remove(path); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}
