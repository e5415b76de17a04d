// Package logger is the public API of scopelog. Most users only need
// to import this package.
//
// A Logger is the formatting pipeline for one category. Each call
// runs through: level gate, message formatting, optional filter
// predicate, optional custom formatter, default text formatter, sink
// hand-off. The gate comes first and costs a single comparison, so
// disabled levels do no work at all. The record and the scope
// aggregation are produced at most once per call, and only when a
// filter or custom formatter actually consumes them.
//
// Loggers are immutable after construction and safe for concurrent
// use without locking; every call allocates its own record. Use the
// Builder:
//
//	log := logger.NewBuilder().
//	    WithCategory("orders").
//	    WithSink(sink.NewConsole(sink.ConsoleConfig{})).
//	    WithScopes(scope.NewStack()).
//	    WithMinLevel(logger.DebugLevel).
//	    Build()
//
// Ambient context is pushed around units of work and is visible to
// every call made while active:
//
//	done := log.BeginScope(scope.Fields(
//	    scope.Field{Key: scope.TemplateKey, Value: "order {id}"},
//	    scope.Field{Key: "id", Value: 42},
//	))
//	defer done.End()
//	log.Info("charging card")
//
// The package also initializes a default logger (async console sink,
// InformationLevel, the executable name as category); the
// package-level functions Info, Warnf, etc. delegate to it.
package logger
