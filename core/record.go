package core

import "strconv"

// EventID is an opaque correlation tag supplied by the caller. The
// zero value renders as "0".
type EventID struct {
	ID   int
	Name string
}

// String returns the event name when set, otherwise the decimal ID.
func (e EventID) String() string {
	if e.Name != "" {
		return e.Name
	}
	return strconv.Itoa(e.ID)
}

// Record is the data object handed to filters and custom formatters
// once a log call has passed the level gate. Records are built fresh
// per call and must not be mutated after being handed off.
type Record struct {
	Category string
	Level    Level
	EventID  EventID
	Message  string
	Err      error

	// Scopes holds the flattened textual forms of the ambient scopes
	// that were active at call time, outermost first.
	Scopes []string

	// Properties holds named values harvested from structured scopes.
	// Keys are unique; an inner scope overwrites an outer scope's
	// value for the same key.
	Properties map[string]any
}

// NewRecord creates a Record with an empty scope list and property map.
func NewRecord(category string, level Level, eventID EventID, message string, err error) *Record {
	return &Record{
		Category:   category,
		Level:      level,
		EventID:    eventID,
		Message:    message,
		Err:        err,
		Properties: make(map[string]any),
	}
}
