package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when no path is configured, relative to the working directory.
const DefaultPath = "logs/showcase.txt"

// Level tags each line so the console can tell warnings and errors apart from plain output.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logger keeps lines in memory (for the dev console) and appends them to a file on disk.
// The render loop and console commands both write; the console reads Lines while drawing.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path (DefaultPath when empty) and ensures its directory exists.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Path returns the file the logger appends to.
func (l *Logger) Path() string {
	return l.path
}

// Log appends an INFO line. Kept for console input echo, which has no level of its own.
func (l *Logger) Log(line string) {
	l.write(LevelInfo, line)
}

// Infof formats and appends an INFO line.
func (l *Logger) Infof(format string, args ...any) {
	l.write(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf formats and appends a WARN line.
func (l *Logger) Warnf(format string, args ...any) {
	l.write(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf formats and appends an ERROR line.
func (l *Logger) Errorf(format string, args ...any) {
	l.write(LevelError, fmt.Sprintf(format, args...))
}

// write stamps the line with [timestamp] LEVEL and stores it. File errors are dropped;
// the in-memory copy is always kept.
func (l *Logger) write(level Level, line string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + string(level) + " " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
