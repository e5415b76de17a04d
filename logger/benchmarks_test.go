package logger

import (
	"io"
	"testing"

	"github.com/mlehnert/scopelog/core"
	"github.com/mlehnert/scopelog/scope"
	"github.com/mlehnert/scopelog/sink"
)

func BenchmarkDisabledLevel(b *testing.B) {
	log := NewBuilder().
		WithCategory("bench").
		WithSink(sink.NewConsole(sink.ConsoleConfig{Writer: io.Discard})).
		WithMinLevel(ErrorLevel).
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Debug("dropped at the gate")
	}
}

func BenchmarkDefaultFormat(b *testing.B) {
	log := NewBuilder().
		WithCategory("bench").
		WithSink(sink.NewConsole(sink.ConsoleConfig{Writer: io.Discard})).
		WithUTC(true).
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("benchmark message")
	}
}

func BenchmarkWithScopesAndFilter(b *testing.B) {
	st := scope.NewStack()
	log := NewBuilder().
		WithCategory("bench").
		WithSink(sink.NewConsole(sink.ConsoleConfig{Writer: io.Discard})).
		WithScopes(st).
		WithFilter(func(*core.Record) bool { return true }).
		Build()

	done := log.BeginScope(scope.Fields(
		scope.Field{Key: scope.TemplateKey, Value: "request {id}"},
		scope.Field{Key: "id", Value: 42},
	))
	defer done.End()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("benchmark message")
	}
}
