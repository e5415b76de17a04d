// Package scope implements the ambient context model of the pipeline:
// the Scope variant, the per-call-context Stack, and the aggregation
// that flattens the active stack into a record's scope list and
// property map.
//
// A Scope is one of three shapes, fixed when the caller pushes it:
// the no-op sentinel, an ordered key/value sequence, or an opaque
// value. The key/value shape may carry the reserved TemplateKey
// ("{OriginalFormat}") whose string value is a message template;
// during aggregation its {key} placeholders are substituted from the
// property map accumulated so far, so inner templates can reference
// outer properties.
//
// Scopes are pushed around units of work and popped via the returned
// Handle:
//
//	done := stack.Push(scope.Fields(
//	    scope.Field{Key: scope.TemplateKey, Value: "request {id}"},
//	    scope.Field{Key: "id", Value: 42},
//	))
//	defer done.End()
//
// Stacks travel through call trees either directly or attached to a
// context.Context via NewContext/FromContext.
package scope
