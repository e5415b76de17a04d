package scope

import "sort"

// TemplateKey is the reserved field key whose string value is treated
// as a message template for the scope it appears in. Sibling fields
// become the named placeholders substituted into that template.
const TemplateKey = "{OriginalFormat}"

// Kind discriminates the three scope shapes. The shape of a scope is
// decided once, when the caller pushes it; the aggregator matches on
// Kind and never inspects runtime types again.
type Kind uint8

const (
	// KindNone is the no-op sentinel. It carries no data and never
	// appears in aggregation output.
	KindNone Kind = iota
	// KindFields is an ordered key/value sequence, optionally
	// carrying TemplateKey.
	KindFields
	// KindValue is an arbitrary opaque value rendered via its
	// display form.
	KindValue
)

// Field is a single key/value pair inside a KindFields scope.
type Field struct {
	Key   string
	Value any
}

// Scope is a closed tagged variant over the three recognized shapes.
// The zero value is the no-op sentinel.
type Scope struct {
	kind   Kind
	fields []Field
	value  any
}

// None returns the no-op sentinel scope.
func None() Scope {
	return Scope{}
}

// Fields builds a structured key/value scope. Field order is
// preserved.
func Fields(fields ...Field) Scope {
	return Scope{kind: KindFields, fields: fields}
}

// Value builds an opaque scope whose display form is appended to the
// scope list as-is.
func Value(v any) Scope {
	return Scope{kind: KindValue, value: v}
}

// Kind returns the scope's shape tag.
func (s Scope) Kind() Kind {
	return s.kind
}

// Capture recognizes an arbitrary caller-supplied state value as one
// of the three scope shapes. This is the push-boundary classification:
// nil becomes the sentinel, key/value shapes become KindFields, and
// everything else is an opaque KindValue.
func Capture(state any) Scope {
	switch v := state.(type) {
	case nil:
		return Scope{}
	case Scope:
		return v
	case []Field:
		return Fields(v...)
	case Field:
		return Fields(v)
	case map[string]any:
		// Maps have no intrinsic order; sort keys so traversal is
		// deterministic.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(v))
		for _, k := range keys {
			fields = append(fields, Field{Key: k, Value: v[k]})
		}
		return Fields(fields...)
	default:
		return Value(state)
	}
}
