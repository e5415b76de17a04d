// Package sink provides the destinations that receive formatted
// entries from the pipeline.
//
// Console and File support both synchronous and asynchronous
// operation. In async mode entries are sent to a bounded channel and
// written by a background goroutine, which keeps the logging call
// fast even under slow I/O. When the queue is full an OverflowPolicy
// decides what happens: DropNewest (default), DropOldest, or Block
// with a timeout that falls back to a synchronous write. Dropped,
// blocked, and processed counts are tracked per sink and can be
// queried at runtime.
//
// File additionally rotates by size, age, or fixed interval, renaming
// the active file with a timestamp suffix and pruning old backups
// beyond MaxBackups.
//
// Multi fans a single entry out to several children, folding their
// errors together. Memory retains entries in-process, mainly for
// tests.
package sink
