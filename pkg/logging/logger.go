// Package logging provides Copycat's leveled logger. It is the injected
// collaborator referenced by "log formatter is external" framing:
// the sync engine only ever holds a *Logger, so a caller that wants plain
// text, JSON, or no output at all can substitute a different Output and
// Level without touching engine code.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil (all methods are no-ops), so callers that don't want
// logging can simply pass a nil *Logger around.
type Logger struct {
	// level is the maximum level that will be logged.
	level Level
	// output is the destination for rendered log lines.
	output io.Writer
	// color indicates whether or not ANSI color codes should be emitted.
	color bool
	// prefix is prepended to every line (typically the component name).
	prefix string
	// lock serializes writes from concurrent workers.
	lock sync.Mutex
}

// NewLogger creates a new top-level logger writing to output at the
// specified level. Color is enabled automatically when output is a
// terminal.
func NewLogger(level Level, output io.Writer) *Logger {
	useColor := false
	if f, ok := output.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{
		level:  level,
		output: output,
		color:  useColor,
	}
}

// Sublogger creates a derived logger that shares the parent's level, output,
// and color settings but prefixes its own output with name.
func (l *Logger) Sublogger(name string) *Logger {
	if l == nil {
		return nil
	}
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}
	return &Logger{
		level:  l.level,
		output: l.output,
		color:  l.color,
		prefix: prefix,
	}
}

// Level returns the logger's configured level.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

func (l *Logger) colorize(level Level, line string) string {
	if !l.color {
		return line
	}
	switch level {
	case LevelError:
		return color.New(color.FgRed, color.Bold).Sprint(line)
	case LevelWarn:
		return color.New(color.FgYellow).Sprint(line)
	case LevelDebug:
		return color.New(color.FgHiBlack).Sprint(line)
	default:
		return line
	}
}

func (l *Logger) log(level Level, format string, arguments ...any) {
	if l == nil || l.level < level {
		return
	}
	message := fmt.Sprintf(format, arguments...)
	timestamp := time.Now().Format("15:04:05.000")
	line := fmt.Sprintf("%s [%s] %s", timestamp, level.String(), message)
	if l.prefix != "" {
		line = fmt.Sprintf("(%s) %s", l.prefix, line)
	}
	line = l.colorize(level, line)

	l.lock.Lock()
	defer l.lock.Unlock()
	fmt.Fprintln(l.output, line)
}

// Error logs a message at LevelError.
func (l *Logger) Error(arguments ...any) {
	l.log(LevelError, "%s", fmt.Sprint(arguments...))
}

// Errorf logs a formatted message at LevelError.
func (l *Logger) Errorf(format string, arguments ...any) {
	l.log(LevelError, format, arguments...)
}

// Warn logs a message at LevelWarn.
func (l *Logger) Warn(arguments ...any) {
	l.log(LevelWarn, "%s", fmt.Sprint(arguments...))
}

// Warnf logs a formatted message at LevelWarn.
func (l *Logger) Warnf(format string, arguments ...any) {
	l.log(LevelWarn, format, arguments...)
}

// Info logs a message at LevelInfo.
func (l *Logger) Info(arguments ...any) {
	l.log(LevelInfo, "%s", fmt.Sprint(arguments...))
}

// Infof logs a formatted message at LevelInfo.
func (l *Logger) Infof(format string, arguments ...any) {
	l.log(LevelInfo, format, arguments...)
}

// Debug logs a message at LevelDebug.
func (l *Logger) Debug(arguments ...any) {
	l.log(LevelDebug, "%s", fmt.Sprint(arguments...))
}

// Debugf logs a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, arguments ...any) {
	l.log(LevelDebug, format, arguments...)
}
