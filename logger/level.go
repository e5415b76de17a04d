package logger

import "github.com/mlehnert/scopelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel       = core.TraceLevel
	DebugLevel       = core.DebugLevel
	InformationLevel = core.InformationLevel
	WarningLevel     = core.WarningLevel
	ErrorLevel       = core.ErrorLevel
	CriticalLevel    = core.CriticalLevel
	NoneLevel        = core.NoneLevel
)

// EventID re-exported for convenience
type EventID = core.EventID

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
