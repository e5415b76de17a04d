package bridge

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mlehnert/scopelog/core"
	"github.com/mlehnert/scopelog/formatter"
	"github.com/mlehnert/scopelog/sink"
)

// SlogHandler adapts a scopelog sink to the log/slog Handler
// interface, so the standard library's structured logger can write
// through scopelog's sinks. Attributes are rendered as key=value
// pairs after the default text line, with group names joined by dots.
type SlogHandler struct {
	sink     sink.Sink
	category string
	min      core.Level
	utc      bool
	attrs    []slogAttr
	group    string
}

type slogAttr struct {
	key   string
	value string
}

// NewSlogHandler creates a slog.Handler writing to the given sink.
func NewSlogHandler(s sink.Sink, category string, min core.Level) *SlogHandler {
	return &SlogHandler{
		sink:     s,
		category: category,
		min:      min,
		utc:      true,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevel(level).Enabled(h.min)
}

// Handle converts a slog.Record into a formatted entry and hands it
// to the sink.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	rec := core.NewRecord(h.category, slogLevel(record.Level), core.EventID{}, record.Message, nil)

	attrs := make([]slogAttr, 0, len(h.attrs)+record.NumAttrs())
	attrs = append(attrs, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.renderAttr(a))
		return true
	})
	for _, a := range attrs {
		rec.Properties[a.key] = a.value
	}

	clock := record.Time
	text := formatter.Text{UTC: h.utc}
	if !clock.IsZero() {
		text.Clock = func() time.Time { return clock }
	}

	var b strings.Builder
	b.WriteString(text.Format(rec))
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.key)
		b.WriteByte('=')
		b.WriteString(a.value)
	}
	return h.sink.WriteEntry(b.String())
}

// WithAttrs returns a handler that carries the additional attributes
// on every record.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slogAttr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(clone.attrs, h.attrs)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, h.renderAttr(a))
	}
	return &clone
}

// WithGroup returns a handler that prefixes subsequent attribute keys
// with the group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		clone.group = h.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func (h *SlogHandler) renderAttr(a slog.Attr) slogAttr {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + a.Key
	}
	return slogAttr{key: key, value: a.Value.Resolve().String()}
}

// slogLevel converts a slog.Level to a core.Level.
func slogLevel(level slog.Level) core.Level {
	switch {
	case level < slog.LevelDebug:
		return core.TraceLevel
	case level < slog.LevelInfo:
		return core.DebugLevel
	case level < slog.LevelWarn:
		return core.InformationLevel
	case level < slog.LevelError:
		return core.WarningLevel
	case level < slog.LevelError+4:
		return core.ErrorLevel
	default:
		return core.CriticalLevel
	}
}
