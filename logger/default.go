package logger

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/mlehnert/scopelog/core"
	"github.com/mlehnert/scopelog/scope"
	"github.com/mlehnert/scopelog/sink"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with an async console sink and the
	// executable name as category
	s := sink.NewConsole(sink.ConsoleConfig{
		Async:      true,
		BufferSize: 1000,
	})

	defaultLogger = NewBuilder().
		WithCategory(filepath.Base(os.Args[0])).
		WithSink(s).
		WithScopes(scope.NewStack()).
		WithMinLevel(core.InformationLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Trace logs a trace message using the default logger
func Trace(msg string) {
	Default().Trace(msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().Debug(msg)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	Default().Warn(msg)
}

// Error logs an error message using the default logger
func Error(msg string, err error) {
	Default().Error(msg, err)
}

// Critical logs a critical message using the default logger
func Critical(msg string, err error) {
	Default().Critical(msg, err)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...any) {
	Default().Tracef(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...any) {
	Default().Warnf(format, args...)
}

// BeginScope pushes state onto the default logger's scope stack
func BeginScope(state any) scope.Handle {
	return Default().BeginScope(state)
}
