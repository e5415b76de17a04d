package formatter

import (
	"bytes"
	"sync"

	"github.com/mlehnert/scopelog/core"
)

// Formatter turns a record into the line handed to a sink. An empty
// result means the record produced no output and nothing is written.
type Formatter interface {
	Format(rec *core.Record) string
}

// Func adapts a plain function to the Formatter interface. Custom
// per-logger formatters are supplied in this form.
type Func func(rec *core.Record) string

// Format implements Formatter.
func (f Func) Format(rec *core.Record) string {
	return f(rec)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
