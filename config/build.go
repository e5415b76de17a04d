package config

import (
	"os"

	"github.com/mlehnert/scopelog/logger"
	"github.com/mlehnert/scopelog/scope"
	"github.com/mlehnert/scopelog/sink"
)

// Build assembles a logger and its sink from a validated
// configuration. With both console and file sections present the
// sinks are fanned out; with neither, a synchronous console sink is
// the fallback. Closing the logger closes the sink.
func Build(cfg *Config) (*logger.Logger, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	var sinks []sink.Sink

	if cfg.Console != nil {
		w := os.Stdout
		if cfg.Console.Stderr {
			w = os.Stderr
		}
		sinks = append(sinks, sink.NewConsole(sink.ConsoleConfig{
			Writer:     w,
			Async:      cfg.Console.Async,
			BufferSize: cfg.Console.BufferSize,
		}))
	}

	if cfg.File != nil {
		fs, err := sink.NewFile(sink.FileConfig{
			Path:           cfg.File.Path,
			Async:          cfg.File.Async,
			BufferSize:     cfg.File.BufferSize,
			MaxSize:        cfg.File.MaxSize,
			MaxBackups:     cfg.File.MaxBackups,
			RotateInterval: cfg.File.RotateInterval,
		})
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fs)
	}

	var s sink.Sink
	switch len(sinks) {
	case 0:
		s = sink.NewConsole(sink.ConsoleConfig{})
	case 1:
		s = sinks[0]
	default:
		s = sink.NewMulti(sinks...)
	}

	return logger.NewBuilder().
		WithCategory(cfg.Category).
		WithSink(s).
		WithScopes(scope.NewStack()).
		WithMinLevel(cfg.MinLevel()).
		WithUTC(cfg.UTC).
		Build(), nil
}
