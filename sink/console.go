package sink

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Console writes entries to an io.Writer, one line per entry. In
// async mode entries pass through a bounded queue drained by a
// background goroutine, so slow writers never stall the logging call.
type Console struct {
	writer io.Writer
	mu     sync.Mutex
	q      *queue
	closed chan struct{}
	stats  Stats
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Async enables asynchronous writing
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// Overflow defines behavior when the async queue is full
	// (default: DropNewest)
	Overflow OverflowPolicy
	// BlockTimeout is the timeout for the Block policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout bounds queue draining on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewConsole creates a console sink.
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	s := &Console{
		writer: cfg.Writer,
		closed: make(chan struct{}),
	}
	if cfg.Async {
		s.q = newQueue(cfg.BufferSize, cfg.Overflow, cfg.BlockTimeout, cfg.DrainTimeout, &s.stats, s.writeLine)
	}
	return s
}

// WriteEntry implements Sink.
func (s *Console) WriteEntry(entry string) error {
	if s.q == nil {
		return s.writeLine(entry)
	}
	return s.q.enqueue(entry)
}

func (s *Console) writeLine(entry string) error {
	s.mu.Lock()
	_, err := fmt.Fprintln(s.writer, entry)
	s.mu.Unlock()
	if err == nil {
		s.stats.processed.Add(1)
	}
	return err
}

// Stats returns the sink's counters.
func (s *Console) Stats() *Stats {
	return &s.stats
}

// Close drains the async queue. It is safe to call more than once.
func (s *Console) Close() error {
	select {
	case <-s.closed:
		return nil // Already closed
	default:
	}
	close(s.closed)

	if s.q != nil {
		s.q.close()
	}
	return nil
}
