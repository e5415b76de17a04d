// Package core defines the shared types used across the scopelog
// pipeline: the total-ordered Level, the EventID correlation tag, and
// the Record handed to filters and custom formatters.
//
// The level gate is a single integer comparison (Level.Enabled), so
// calls at a disabled level cost nothing beyond it. Records are
// allocated per call and never shared between calls, which keeps the
// pipeline lock-free.
package core
