package formatter

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/mlehnert/scopelog/core"
)

// JSON formats records as single-line JSON objects, including the
// aggregated scope list and property map. It is meant for loggers
// configured with a custom formatter when the output is consumed by
// machines rather than people.
type JSON struct {
	// UTC selects coordinated universal time for the timestamp.
	UTC bool

	// Clock overrides the time source. Nil means time.Now.
	Clock func() time.Time
}

// NewJSON creates a JSON formatter.
func NewJSON(utc bool) *JSON {
	return &JSON{UTC: utc}
}

// Format implements Formatter.
func (f *JSON) Format(rec *core.Record) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteByte('{')

	now := time.Now
	if f.Clock != nil {
		now = f.Clock
	}
	t := now()
	if f.UTC {
		t = t.UTC()
	}
	buf.WriteString(`"time":"`)
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), TimestampLayout))
	buf.WriteByte('"')

	buf.WriteString(`,"level":"`)
	buf.WriteString(rec.Level.Code())
	buf.WriteByte('"')

	buf.WriteString(`,"category":"`)
	appendJSONString(buf, rec.Category)
	buf.WriteByte('"')

	buf.WriteString(`,"eventId":"`)
	appendJSONString(buf, rec.EventID.String())
	buf.WriteByte('"')

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, rec.Message)
	buf.WriteByte('"')

	if rec.Err != nil {
		buf.WriteString(`,"error":"`)
		appendJSONString(buf, rec.Err.Error())
		buf.WriteByte('"')
	}

	if len(rec.Scopes) > 0 {
		buf.WriteString(`,"scopes":[`)
		for i, s := range rec.Scopes {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			appendJSONString(buf, s)
			buf.WriteByte('"')
		}
		buf.WriteByte(']')
	}

	if len(rec.Properties) > 0 {
		keys := make([]string, 0, len(rec.Properties))
		for k := range rec.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteString(`,"properties":{`)
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			appendJSONString(buf, k)
			buf.WriteString(`":`)
			appendJSONValue(buf, rec.Properties[k])
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return buf.String()
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONValue writes a property value, using native JSON encodings
// for the common scalar types and a quoted display form otherwise.
func appendJSONValue(buf *bytes.Buffer, v any) {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		buf.WriteByte('"')
		appendJSONString(buf, val)
		buf.WriteByte('"')
	case bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), val))
	case int:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(val), 10))
	case int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), val, 10))
	case float64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), val, 'f', -1, 64))
	case time.Duration:
		buf.WriteByte('"')
		buf.WriteString(val.String())
		buf.WriteByte('"')
	case error:
		buf.WriteByte('"')
		appendJSONString(buf, val.Error())
		buf.WriteByte('"')
	default:
		buf.WriteByte('"')
		appendJSONString(buf, fmt.Sprint(val))
		buf.WriteByte('"')
	}
}
