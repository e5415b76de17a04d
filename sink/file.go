package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// File writes entries to an append-only log file with rotation by
// size, age, or fixed interval, and prunes old backups.
type File struct {
	path        string
	file        *os.File
	mu          sync.Mutex
	q           *queue
	closed      chan struct{}
	stats       Stats
	maxSize     int64
	maxAge      time.Duration
	maxBackups  int
	interval    time.Duration
	currentSize int64
	lastRotate  time.Time
}

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Path is the log file location; parent directories are created
	Path string
	// Async enables asynchronous writing
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// Overflow defines behavior when the async queue is full
	Overflow OverflowPolicy
	// BlockTimeout is the timeout for the Block policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout bounds queue draining on Close (default: 5s)
	DrainTimeout time.Duration
	// MaxSize is the maximum size in bytes before rotation (0 = no size rotation)
	MaxSize int64
	// MaxAge is the maximum age before rotation (0 = no age rotation)
	MaxAge time.Duration
	// RotateInterval rotates on a fixed cadence (0 = disabled)
	RotateInterval time.Duration
	// MaxBackups is the maximum number of rotated files to retain (0 = keep all)
	MaxBackups int
}

// NewFile creates a file sink, creating the parent directory and
// opening the file for append.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file sink: path is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("file sink: create directory: %w", err)
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file sink: open: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("file sink: stat: %w", err)
	}

	s := &File{
		path:        cfg.Path,
		file:        file,
		closed:      make(chan struct{}),
		maxSize:     cfg.MaxSize,
		maxAge:      cfg.MaxAge,
		maxBackups:  cfg.MaxBackups,
		interval:    cfg.RotateInterval,
		currentSize: info.Size(),
		lastRotate:  time.Now(),
	}
	if cfg.Async {
		s.q = newQueue(cfg.BufferSize, cfg.Overflow, cfg.BlockTimeout, cfg.DrainTimeout, &s.stats, s.writeLine)
	}
	return s, nil
}

// WriteEntry implements Sink.
func (s *File) WriteEntry(entry string) error {
	if s.q == nil {
		return s.writeLine(entry)
	}
	return s.q.enqueue(entry)
}

func (s *File) writeLine(entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := fmt.Fprintln(s.file, entry)
	if err == nil {
		s.currentSize += int64(n)
		s.stats.processed.Add(1)
	}
	return err
}

// rotateIfNeeded checks the rotation triggers. Caller holds mu.
func (s *File) rotateIfNeeded() error {
	needRotate := false

	if s.maxSize > 0 && s.currentSize >= s.maxSize {
		needRotate = true
	}
	if s.maxAge > 0 && time.Since(s.lastRotate) >= s.maxAge {
		needRotate = true
	}
	if s.interval > 0 && time.Since(s.lastRotate) >= s.interval {
		needRotate = true
	}

	if !needRotate {
		return nil
	}
	return s.rotate()
}

// rotate renames the current file with a timestamp suffix and opens a
// fresh one. Caller holds mu.
func (s *File) rotate() error {
	if err := s.file.Sync(); err != nil {
		return err
	}
	if err := s.file.Close(); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02T15-04-05.000000000")
	rotatedName := fmt.Sprintf("%s.%s", s.path, timestamp)

	if err := os.Rename(s.path, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		s.file = file
		return err
	}

	if s.maxBackups > 0 {
		s.cleanupOldBackups()
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	s.file = file
	s.currentSize = 0
	s.lastRotate = time.Now()
	return nil
}

// cleanupOldBackups removes rotated files beyond MaxBackups, oldest
// first.
func (s *File) cleanupOldBackups() {
	base := filepath.Base(s.path)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(s.path), base+".*"))
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	if len(backups) > s.maxBackups {
		for _, old := range backups[:len(backups)-s.maxBackups] {
			if err := os.Remove(old); err != nil {
				return
			}
		}
	}
}

// Stats returns the sink's counters.
func (s *File) Stats() *Stats {
	return &s.stats
}

// Close drains the async queue, then syncs and closes the file.
func (s *File) Close() error {
	select {
	case <-s.closed:
		return nil // Already closed
	default:
	}
	close(s.closed)

	if s.q != nil {
		s.q.close()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		_ = s.file.Close()
		return err
	}
	return s.file.Close()
}
