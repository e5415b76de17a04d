package core

import "strings"

// Level represents the severity level of a log call
type Level int8

const (
	// TraceLevel for the most detailed diagnostic output
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InformationLevel for general informational messages (default)
	InformationLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for failures that require immediate attention
	CriticalLevel
	// NoneLevel disables logging entirely when used as a minimum
	NoneLevel
)

// Enabled reports whether a call at level l passes a gate configured
// with minimum level min. It is the only level comparison in the
// pipeline; everything else short-circuits through it.
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InformationLevel:
		return "INFORMATION"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case NoneLevel:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// Code returns the fixed-width four-letter code used by the text
// formatter. Levels outside the known range fall back to the
// upper-cased level name.
func (l Level) Code() string {
	switch l {
	case TraceLevel:
		return "TRCE"
	case DebugLevel:
		return "DBUG"
	case InformationLevel:
		return "INFO"
	case WarningLevel:
		return "WARN"
	case ErrorLevel:
		return "FAIL"
	case CriticalLevel:
		return "CRIT"
	default:
		return strings.ToUpper(l.String())
	}
}

// ParseLevel converts a string to a Level. Unknown values map to
// InformationLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel
	case "DEBUG":
		return DebugLevel
	case "INFO", "INFORMATION":
		return InformationLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "ERROR":
		return ErrorLevel
	case "CRIT", "CRITICAL":
		return CriticalLevel
	case "NONE":
		return NoneLevel
	default:
		return InformationLevel
	}
}
