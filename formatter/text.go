package formatter

import (
	"time"

	"github.com/mlehnert/scopelog/core"
)

// TimestampLayout is the round-trippable ISO-8601 instant written at
// the head of every line. The fractional part is fixed-width so that
// lexicographic order matches chronological order within one offset.
const TimestampLayout = "2006-01-02T15:04:05.0000000Z07:00"

// Text is the default formatter. It produces a single tab-delimited
// line per record:
//
//	<timestamp>\t<levelCode>\t[<category>]\t[<eventId>]\t<message>
//
// followed by the error text on its own line when the record carries
// one. The error line is written even when the message is empty; a
// record with neither formats to the empty string.
//
// Text does not consume scopes: the scope list and property map are
// only rendered by custom formatters.
type Text struct {
	// UTC selects coordinated universal time for the timestamp;
	// otherwise local time with its offset is written.
	UTC bool

	// Clock overrides the time source. Nil means time.Now.
	Clock func() time.Time
}

// NewText creates a text formatter.
func NewText(utc bool) *Text {
	return &Text{UTC: utc}
}

// Format implements Formatter.
func (f *Text) Format(rec *core.Record) string {
	if rec.Message == "" && rec.Err == nil {
		return ""
	}

	buf := getBuffer()
	defer putBuffer(buf)

	if rec.Message != "" {
		now := time.Now
		if f.Clock != nil {
			now = f.Clock
		}
		t := now()
		if f.UTC {
			t = t.UTC()
		}
		buf.Write(t.AppendFormat(buf.AvailableBuffer(), TimestampLayout))
		buf.WriteByte('\t')
		buf.WriteString(rec.Level.Code())
		buf.WriteString("\t[")
		buf.WriteString(rec.Category)
		buf.WriteString("]\t[")
		buf.WriteString(rec.EventID.String())
		buf.WriteString("]\t")
		buf.WriteString(rec.Message)
	}

	if rec.Err != nil {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(rec.Err.Error())
	}

	return buf.String()
}
