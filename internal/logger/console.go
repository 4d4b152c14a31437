// Package logger provides the leveled console logger used for discovery
// progress and skip-and-continue warnings. The logger is thread-safe and
// silently discards output when given a nil writer.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs messages to a writer with [HH:MM:SS] timestamps and
// thread safety. It supports log level filtering to control verbosity, and
// color output is automatically enabled when the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided
// io.Writer. If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive);
// an empty or invalid level defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// Respects the NO_COLOR convention via the color library's global flag.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates
// it. Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if validLevels[normalized] {
		return normalized
	}

	return "info" // Default level
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Tracef logs a formatted message at trace level.
func (cl *ConsoleLogger) Tracef(format string, args ...interface{}) {
	cl.logf("trace", nil, format, args...)
}

// Debugf logs a formatted message at debug level.
func (cl *ConsoleLogger) Debugf(format string, args ...interface{}) {
	cl.logf("debug", nil, format, args...)
}

// Infof logs a formatted message at info level.
func (cl *ConsoleLogger) Infof(format string, args ...interface{}) {
	cl.logf("info", nil, format, args...)
}

// Warnf logs a formatted message at warn level. Rendered in yellow on
// terminals.
func (cl *ConsoleLogger) Warnf(format string, args ...interface{}) {
	cl.logf("warn", color.New(color.FgYellow), format, args...)
}

// Errorf logs a formatted message at error level. Rendered in red on
// terminals.
func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) {
	cl.logf("error", color.New(color.FgRed), format, args...)
}

func (cl *ConsoleLogger) logf(level string, c *color.Color, format string, args ...interface{}) {
	if cl == nil || cl.writer == nil || !cl.shouldLog(level) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s: %s\n", time.Now().Format("15:04:05"), strings.ToUpper(level), msg)
	if cl.colorOutput && c != nil {
		fmt.Fprint(cl.writer, c.Sprint(line))
		return
	}
	fmt.Fprint(cl.writer, line)
}
