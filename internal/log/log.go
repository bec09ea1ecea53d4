// ABOUTME: Level-gated stderr logging for the CLI; slog levels without a handler chain
// ABOUTME: Verbose mode lowers the gate to debug; output never mixes with chart stdout

package log

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

var level atomic.Int64

func init() {
	level.Store(int64(slog.LevelInfo))
}

// SetVerbose lowers the gate to debug when v is true, restores info otherwise.
func SetVerbose(v bool) {
	if v {
		level.Store(int64(slog.LevelDebug))
		return
	}
	level.Store(int64(slog.LevelInfo))
}

func enabled(l slog.Level) bool {
	return l >= slog.Level(level.Load())
}

// Debug logs a formatted debug message when verbose mode is on.
func Debug(format string, args ...any) {
	if !enabled(slog.LevelDebug) {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
}

// Warn logs a formatted warning.
func Warn(format string, args ...any) {
	if !enabled(slog.LevelWarn) {
		return
	}
	fmt.Fprintf(os.Stderr, "[WARN] "+format+"\n", args...)
}

// Error logs a formatted error; never gated.
func Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
