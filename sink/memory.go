package sink

import "sync"

// Memory retains entries in order. It exists for tests and for
// capturing output in-process; it never fails.
type Memory struct {
	mu      sync.Mutex
	entries []string
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

// WriteEntry implements Sink.
func (m *Memory) WriteEntry(entry string) error {
	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()
	return nil
}

// Entries returns a copy of everything written so far.
func (m *Memory) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of entries written.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close implements Sink.
func (m *Memory) Close() error {
	return nil
}
