// Package bridge adapts host logging frameworks to scopelog sinks.
//
// SlogHandler implements log/slog.Handler and ZapCore implements
// zapcore.Core; both gate on a minimum level, format entries with the
// default text shape, append structured fields as key=value pairs,
// and hand the result to a sink. They let applications already
// standardized on slog or zap reuse scopelog's console and file
// sinks, including rotation and async overflow handling.
package bridge
