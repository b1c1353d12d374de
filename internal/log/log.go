// Package log provides leveled, categorized logging for the generator.
// The zero state writes to stderr; Init redirects output to a file so the
// generated artifacts and diagnostics never interleave on one stream.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level controls which messages are emitted.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the uppercase level name used in log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a config string into a Level. Unknown values
// default to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Category tags a log line with the subsystem that produced it.
type Category string

const (
	CatScan   Category = "scan"
	CatGen    Category = "gen"
	CatConfig Category = "config"
	CatWatch  Category = "watch"
	CatUI     Category = "ui"
)

var (
	mu       sync.Mutex
	out      io.Writer = os.Stderr
	minLevel           = LevelInfo
)

// Init redirects log output to the file at path, creating it if needed.
// The returned cleanup closes the file and restores stderr output.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	mu.Lock()
	out = f
	mu.Unlock()

	cleanup := func() {
		mu.Lock()
		out = os.Stderr
		mu.Unlock()
		_ = f.Close()
	}
	return cleanup, nil
}

// SetLevel sets the minimum level that will be emitted.
func SetLevel(l Level) {
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// SetOutput redirects log output to w. Intended for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

// Debug logs a debug message with optional key-value pairs.
func Debug(cat Category, msg string, keyvals ...any) { emit(LevelDebug, cat, msg, keyvals...) }

// Info logs an informational message with optional key-value pairs.
func Info(cat Category, msg string, keyvals ...any) { emit(LevelInfo, cat, msg, keyvals...) }

// Warn logs a warning with optional key-value pairs.
func Warn(cat Category, msg string, keyvals ...any) { emit(LevelWarn, cat, msg, keyvals...) }

// Error logs an error with optional key-value pairs.
func Error(cat Category, msg string, keyvals ...any) { emit(LevelError, cat, msg, keyvals...) }

func emit(level Level, cat Category, msg string, keyvals ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level < minLevel {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	if len(keyvals)%2 != 0 {
		fmt.Fprintf(&b, " %v=", keyvals[len(keyvals)-1])
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(out, b.String())
}
