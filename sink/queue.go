package sink

import (
	"sync"
	"time"
)

const (
	defaultBufferSize   = 1000
	defaultBlockTimeout = 100 * time.Millisecond
	defaultDrainTimeout = 5 * time.Second
)

// queue is the shared async machinery behind Console and File: a
// bounded channel of formatted entries drained by one background
// goroutine. Overflow behavior is governed by a single policy per
// sink.
type queue struct {
	entries      chan string
	wg           sync.WaitGroup
	closed       chan struct{}
	policy       OverflowPolicy
	blockTimeout time.Duration
	drainTimeout time.Duration
	stats        *Stats
	write        func(entry string) error
}

func newQueue(size int, policy OverflowPolicy, blockTimeout, drainTimeout time.Duration, stats *Stats, write func(string) error) *queue {
	if size <= 0 {
		size = defaultBufferSize
	}
	if blockTimeout <= 0 {
		blockTimeout = defaultBlockTimeout
	}
	if drainTimeout <= 0 {
		drainTimeout = defaultDrainTimeout
	}

	q := &queue{
		entries:      make(chan string, size),
		closed:       make(chan struct{}),
		policy:       policy,
		blockTimeout: blockTimeout,
		drainTimeout: drainTimeout,
		stats:        stats,
		write:        write,
	}
	q.wg.Add(1)
	go q.process()
	return q
}

// enqueue hands an entry to the background writer according to the
// overflow policy.
func (q *queue) enqueue(entry string) error {
	switch q.policy {
	case Block:
		select {
		case q.entries <- entry:
			return nil
		default:
		}
		select {
		case q.entries <- entry:
			return nil
		case <-time.After(q.blockTimeout):
			// Timeout - fall back to synchronous write
			q.stats.blocked.Add(1)
			return q.write(entry)
		case <-q.closed:
			// Sink is closing, write synchronously
			return q.write(entry)
		}

	case DropOldest:
		select {
		case q.entries <- entry:
			return nil
		default:
		}
		// Queue full - drop the oldest to make room
		select {
		case <-q.entries:
			q.stats.dropped.Add(1)
		default:
		}
		select {
		case q.entries <- entry:
			return nil
		default:
			// Still full, drop this one
			q.stats.dropped.Add(1)
			return nil
		}

	case DropNewest:
		fallthrough
	default:
		select {
		case q.entries <- entry:
			return nil
		default:
			q.stats.dropped.Add(1)
			return nil
		}
	}
}

// process drains the queue until the sink closes.
func (q *queue) process() {
	defer q.wg.Done()

	for {
		select {
		case entry := <-q.entries:
			if err := q.write(entry); err != nil {
				return
			}
		case <-q.closed:
			// Drain remaining entries with a deadline
			deadline := time.After(q.drainTimeout)
			for {
				select {
				case entry := <-q.entries:
					if err := q.write(entry); err != nil {
						return
					}
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// close stops the background writer after draining. It must be called
// at most once; callers guard it with their own closed check.
func (q *queue) close() {
	close(q.closed)
	q.wg.Wait()
}
