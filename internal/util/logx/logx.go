// Package logx keeps the application log in a bounded in-memory ring so the
// TUI can show it in a modal without ever writing to the terminal.
package logx

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

const ringCap = 500

var (
	mu    sync.Mutex
	level = Info
	ring  = make([]string, 0, ringCap)
	// stderr output is off by default so it cannot corrupt the screen;
	// enable with FILEEXPLORER_LOG_STDERR=1
	toStderr = false
)

func SetLevel(l Level) { mu.Lock(); level = l; mu.Unlock() }

// SetLevelFromEnv applies FILEEXPLORER_LOG_LEVEL and FILEEXPLORER_LOG_STDERR.
func SetLevelFromEnv() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("FILEEXPLORER_LOG_LEVEL"))) {
	case "debug":
		SetLevel(Debug)
	case "info":
		SetLevel(Info)
	case "warn", "warning":
		SetLevel(Warn)
	case "error":
		SetLevel(Error)
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("FILEEXPLORER_LOG_STDERR"))); v != "" {
		toStderr = v != "0" && v != "false" && v != "no"
	}
}

func Debugf(format string, a ...any) { logf(Debug, "DEBUG", format, a...) }
func Infof(format string, a ...any)  { logf(Info, "INFO", format, a...) }
func Warnf(format string, a ...any)  { logf(Warn, "WARN", format, a...) }
func Errorf(format string, a ...any) { logf(Error, "ERROR", format, a...) }

func logf(l Level, tag, format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	ts := time.Now().Format("2006-01-02T15:04:05.000Z07:00")
	line := fmt.Sprintf("%s %-5s %s", ts, tag, fmt.Sprintf(format, a...))
	if len(ring) >= ringCap {
		copy(ring, ring[1:])
		ring = ring[:len(ring)-1]
	}
	ring = append(ring, line)
	if toStderr {
		fmt.Fprintln(os.Stderr, line)
	}
}

// Dump returns the retained log as one string, newest last.
func Dump() string {
	mu.Lock()
	defer mu.Unlock()
	return strings.Join(ring, "\n")
}
