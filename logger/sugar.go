package logger

import (
	"fmt"

	"github.com/mlehnert/scopelog/core"
)

// FormatMessage is the message formatter behind the convenience
// methods: the state's display form, ignoring the error (the pipeline
// carries the error separately).
var FormatMessage MessageFormatter = func(state any, _ error) string {
	if s, ok := state.(string); ok {
		return s
	}
	return fmt.Sprint(state)
}

// Trace logs a message at TraceLevel
func (l *Logger) Trace(msg string) {
	l.Log(core.TraceLevel, core.EventID{}, msg, nil, FormatMessage)
}

// Debug logs a message at DebugLevel
func (l *Logger) Debug(msg string) {
	l.Log(core.DebugLevel, core.EventID{}, msg, nil, FormatMessage)
}

// Info logs a message at InformationLevel
func (l *Logger) Info(msg string) {
	l.Log(core.InformationLevel, core.EventID{}, msg, nil, FormatMessage)
}

// Warn logs a message at WarningLevel
func (l *Logger) Warn(msg string) {
	l.Log(core.WarningLevel, core.EventID{}, msg, nil, FormatMessage)
}

// Error logs a message and its cause at ErrorLevel
func (l *Logger) Error(msg string, err error) {
	l.Log(core.ErrorLevel, core.EventID{}, msg, err, FormatMessage)
}

// Critical logs a message and its cause at CriticalLevel
func (l *Logger) Critical(msg string, err error) {
	l.Log(core.CriticalLevel, core.EventID{}, msg, err, FormatMessage)
}

// Tracef logs a formatted message at TraceLevel
func (l *Logger) Tracef(format string, args ...any) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.Log(core.TraceLevel, core.EventID{}, fmt.Sprintf(format, args...), nil, FormatMessage)
}

// Debugf logs a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...any) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.Log(core.DebugLevel, core.EventID{}, fmt.Sprintf(format, args...), nil, FormatMessage)
}

// Infof logs a formatted message at InformationLevel
func (l *Logger) Infof(format string, args ...any) {
	if !l.Enabled(core.InformationLevel) {
		return
	}
	l.Log(core.InformationLevel, core.EventID{}, fmt.Sprintf(format, args...), nil, FormatMessage)
}

// Warnf logs a formatted message at WarningLevel
func (l *Logger) Warnf(format string, args ...any) {
	if !l.Enabled(core.WarningLevel) {
		return
	}
	l.Log(core.WarningLevel, core.EventID{}, fmt.Sprintf(format, args...), nil, FormatMessage)
}

// Errorf logs a formatted message at ErrorLevel
func (l *Logger) Errorf(err error, format string, args ...any) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.Log(core.ErrorLevel, core.EventID{}, fmt.Sprintf(format, args...), err, FormatMessage)
}
