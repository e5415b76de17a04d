// Package formatter defines how records are serialized into sink
// entries.
//
// Text is the default: a tab-delimited line headed by a sortable
// ISO-8601 timestamp, the four-letter level code, the bracketed
// category and event id, then the message, with the error text on a
// following line. JSON serializes the full record including scopes
// and properties, for machine consumers.
//
// Both formatters share a pooled bytes.Buffer and use Append-style
// functions (time.AppendFormat, strconv.AppendInt) to keep the write
// path allocation-light. Buffers larger than 64 KiB are not returned
// to the pool so a single huge line cannot permanently inflate memory
// usage.
package formatter
