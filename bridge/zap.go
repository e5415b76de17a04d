package bridge

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/mlehnert/scopelog/core"
	"github.com/mlehnert/scopelog/formatter"
	"github.com/mlehnert/scopelog/sink"
)

// ZapCore adapts a scopelog sink to the zapcore.Core interface, so
// applications standardized on zap can route their output through
// scopelog's sinks. Entries keep zap's own timestamp; fields are
// rendered as sorted key=value pairs after the default text line.
type ZapCore struct {
	zapcore.LevelEnabler
	sink   sink.Sink
	utc    bool
	fields []zapcore.Field
}

// NewZapCore creates a zapcore.Core writing to the given sink.
func NewZapCore(s sink.Sink, enab zapcore.LevelEnabler) *ZapCore {
	return &ZapCore{
		LevelEnabler: enab,
		sink:         s,
		utc:          true,
	}
}

// With adds structured context to the core.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(clone.fields, c.fields)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// Check determines whether the entry should be logged.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write formats the entry and hands it to the sink.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	category := ent.LoggerName
	if category == "" {
		category = "zap"
	}
	rec := core.NewRecord(category, zapLevel(ent.Level), core.EventID{}, ent.Message, nil)

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	keys := make([]string, 0, len(enc.Fields))
	for k, v := range enc.Fields {
		rec.Properties[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	text := formatter.Text{UTC: c.utc, Clock: func() time.Time { return ent.Time }}

	var b strings.Builder
	b.WriteString(text.Format(rec))
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(display(enc.Fields[k]))
	}
	return c.sink.WriteEntry(b.String())
}

// Sync flushes the sink. Sinks flush on Close; there is nothing to do
// per entry.
func (c *ZapCore) Sync() error {
	return nil
}

func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// zapLevel converts a zapcore.Level to a core.Level.
func zapLevel(level zapcore.Level) core.Level {
	switch level {
	case zapcore.DebugLevel:
		return core.DebugLevel
	case zapcore.InfoLevel:
		return core.InformationLevel
	case zapcore.WarnLevel:
		return core.WarningLevel
	case zapcore.ErrorLevel:
		return core.ErrorLevel
	default:
		return core.CriticalLevel
	}
}
