package sink

import "sync/atomic"

// Sink accepts fully formatted entries. WriteEntry receives one entry
// per log call, without a trailing newline; the sink owns framing,
// buffering, and durability.
type Sink interface {
	// WriteEntry records a formatted entry.
	WriteEntry(entry string) error

	// Close flushes pending entries and releases resources.
	Close() error
}

// OverflowPolicy defines how to handle a full async queue
type OverflowPolicy int

const (
	// DropNewest drops the incoming entry when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest queued entry to make room
	DropOldest
	// Block waits for space, falling back to a synchronous write
	// after the block timeout
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// Stats tracks sink counters. All methods are safe for concurrent use.
type Stats struct {
	dropped   atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
}

// Dropped returns the number of entries discarded by overflow handling.
func (s *Stats) Dropped() uint64 { return s.dropped.Load() }

// Blocked returns how often a write blocked past the timeout and fell
// back to a synchronous write.
func (s *Stats) Blocked() uint64 { return s.blocked.Load() }

// Processed returns the number of entries successfully written.
func (s *Stats) Processed() uint64 { return s.processed.Load() }
