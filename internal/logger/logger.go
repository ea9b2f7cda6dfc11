// Package logger prints pipeline diagnostics to stderr when the
// --verbose flag is set. Commands stay quiet by default; with verbose
// on, each service announces its stage and the decisions it makes
// (extractor choice, ranking floors, fallbacks).
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	out     io.Writer = os.Stderr
)

// SetVerbose turns diagnostic output on or off.
func SetVerbose(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
}

// IsVerbose reports whether diagnostic output is on.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetOutput redirects diagnostic output, primarily for tests. The
// default is os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Stage marks the start of a pipeline stage, e.g. "Ask" or "Ingest".
func Stage(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if enabled {
		fmt.Fprintf(out, "\n=== %s ===\n", name)
	}
}

// Debug logs fine-grained pipeline detail.
func Debug(format string, args ...any) {
	emit("DEBUG", format, args...)
}

// Info logs notable pipeline outcomes.
func Info(format string, args ...any) {
	emit("INFO", format, args...)
}

// Warn logs degraded but non-fatal conditions, such as a responder
// falling back to the extractive path.
func Warn(format string, args ...any) {
	emit("WARN", format, args...)
}

func emit(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	fmt.Fprintf(out, "["+level+"] "+format+"\n", args...)
}
