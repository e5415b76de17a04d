package logger

import (
	"github.com/mlehnert/scopelog/core"
	"github.com/mlehnert/scopelog/formatter"
	"github.com/mlehnert/scopelog/scope"
	"github.com/mlehnert/scopelog/sink"
)

// MessageFormatter turns the caller's state and error into the final
// message text. It is mandatory on every Log call; the pipeline never
// interpolates placeholders into the message itself.
type MessageFormatter func(state any, err error) string

// Filter decides per record whether a call that passed the level gate
// is written. Returning false drops the call silently.
type Filter func(rec *core.Record) bool

// Logger is the formatting pipeline for one category (immutable)
type Logger struct {
	category  string
	sink      sink.Sink
	scopes    *scope.Stack
	minLevel  core.Level
	filter    Filter
	formatter formatter.Formatter
	text      *formatter.Text
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	category  string
	sink      sink.Sink
	scopes    *scope.Stack
	minLevel  core.Level
	filter    Filter
	formatter formatter.Formatter
	utc       bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		minLevel: core.InformationLevel, // Default level
	}
}

// WithCategory sets the logical source name carried by every record
func (b *Builder) WithCategory(name string) *Builder {
	b.category = name
	return b
}

// WithSink sets the destination for formatted entries
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithScopes attaches the ambient scope stack. Without one,
// BeginScope hands out the shared no-op handle.
func (b *Builder) WithScopes(st *scope.Stack) *Builder {
	b.scopes = st
	return b
}

// WithMinLevel sets the minimum level
func (b *Builder) WithMinLevel(level core.Level) *Builder {
	b.minLevel = level
	return b
}

// WithFilter sets the optional per-record filter predicate
func (b *Builder) WithFilter(f Filter) *Builder {
	b.filter = f
	return b
}

// WithFormatter replaces the default text formatter with a custom one
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithFormatterFunc is WithFormatter for a plain function
func (b *Builder) WithFormatterFunc(f func(*core.Record) string) *Builder {
	b.formatter = formatter.Func(f)
	return b
}

// WithUTC selects UTC timestamps for the default formatter
func (b *Builder) WithUTC(utc bool) *Builder {
	b.utc = utc
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		category:  b.category,
		sink:      b.sink,
		scopes:    b.scopes,
		minLevel:  b.minLevel,
		filter:    b.filter,
		formatter: b.formatter,
		text:      formatter.NewText(b.utc),
	}
}

// Category returns the logger's category name.
func (l *Logger) Category() string {
	return l.category
}

// Enabled reports whether a call at the given level would proceed.
func (l *Logger) Enabled(level core.Level) bool {
	return level.Enabled(l.minLevel)
}

// Log runs one call through the pipeline: level gate, message
// formatting, optional filter, optional custom formatter, default
// text formatter, sink hand-off.
//
// format must be non-nil; passing nil is a contract violation and
// panics before any record is built. Panics raised by the filter or a
// custom formatter are deliberately not recovered.
//
// The record and the scope aggregation are produced at most once per
// call, and only when a filter or custom formatter needs them.
func (l *Logger) Log(level core.Level, eventID core.EventID, state any, err error, format MessageFormatter) {
	// Level gate first - the cheapest check short-circuits everything
	if !l.Enabled(level) {
		return
	}
	if format == nil {
		panic("scopelog: message formatter must not be nil")
	}
	if l.sink == nil {
		return
	}

	msg := format(state, err)

	var rec *core.Record
	if l.filter != nil || l.formatter != nil {
		rec = l.newRecord(level, eventID, msg, err)
		scope.Aggregate(l.scopes, rec)
	}

	if l.filter != nil && !l.filter(rec) {
		return
	}

	if l.formatter != nil {
		_ = l.sink.WriteEntry(l.formatter.Format(rec))
		return
	}

	// Default path: the text formatter does not consume scopes, so no
	// aggregation is needed here.
	if rec == nil {
		rec = l.newRecord(level, eventID, msg, err)
	}
	if out := l.text.Format(rec); out != "" {
		_ = l.sink.WriteEntry(out)
	}
}

func (l *Logger) newRecord(level core.Level, eventID core.EventID, msg string, err error) *core.Record {
	return core.NewRecord(l.category, level, eventID, msg, err)
}

// BeginScope pushes state onto the ambient scope stack and returns
// the handle that removes it. With no stack configured the shared
// no-op handle is returned.
func (l *Logger) BeginScope(state any) scope.Handle {
	if l.scopes == nil {
		return scope.Nop
	}
	return l.scopes.Push(scope.Capture(state))
}

// Close closes the logger's sink
func (l *Logger) Close() error {
	if l.sink != nil {
		return l.sink.Close()
	}
	return nil
}
