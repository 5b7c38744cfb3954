// Package logger provides leveled logging for the scenario and report
// tooling. The formula packages never log.
//
// Verbosity levels (in increasing order):
//
//	Error < Info < Debug < Trace
//
// Example usage:
//
//	logger.SetVerbosity(logger.Debug)
//	logger.Infof("loaded %d contracts", n)
//	logger.Debugf("contract %s d1=%f", name, d1)
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a logging verbosity level.
// Higher values mean more verbose logging.
type Level int

const (
	Error Level = iota // Error logs only failures.
	Info               // Info logs loads, writes and summaries.
	Debug              // Debug logs per-contract evaluation.
	Trace              // Trace logs every computed value.
)

var (
	mu      sync.RWMutex
	current = Info

	// Output goes to stderr so it never mixes with report data on stdout.
	// Example line:
	//   2026/01/25 15:42:10 scenario.go:87: [INFO]  loaded 3 contracts
	std = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
)

// String returns the lower-case name used in configuration files.
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel maps a configuration name ("error", "info", "debug", "trace")
// to its Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return Error, nil
	case "info", "":
		return Info, nil
	case "debug":
		return Debug, nil
	case "trace":
		return Trace, nil
	}
	return Info, fmt.Errorf("unknown log level %q", name)
}

// SetVerbosity sets the global logging verbosity.
// Typically called once after the scenario configuration is loaded.
func SetVerbosity(l Level) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

// Verbosity returns the active level.
func Verbosity() Level {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetOutput redirects log output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// logf checks verbosity and hands the message to the underlying logger.
// calldepth 3 reports the caller of Errorf/Infof/Debugf/Tracef.
func logf(l Level, prefix, format string, args ...any) {
	if Verbosity() >= l {
		_ = std.Output(3, prefix+fmt.Sprintf(format, args...))
	}
}

// Errorf logs an error-level message.
func Errorf(format string, args ...any) {
	logf(Error, "[ERROR] ", format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	logf(Info, "[INFO]  ", format, args...)
}

// Debugf logs debugging information.
func Debugf(format string, args ...any) {
	logf(Debug, "[DEBUG] ", format, args...)
}

// Tracef logs very detailed execution traces.
// Use this sparingly due to high volume.
func Tracef(format string, args ...any) {
	logf(Trace, "[TRACE] ", format, args...)
}
