package sink

import "go.uber.org/multierr"

// Multi fans every entry out to all child sinks. Write and close
// errors from the children are combined rather than masked by the
// last one.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a fan-out sink.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// WriteEntry implements Sink. Every child receives the entry even
// when an earlier child fails.
func (m *Multi) WriteEntry(entry string) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.WriteEntry(entry))
	}
	return err
}

// Close closes all child sinks.
func (m *Multi) Close() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
