package scope

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mlehnert/scopelog/core"
)

// Aggregate walks the stack outermost-first and fills the record's
// Scopes and Properties fields. Aggregation is the only place scopes
// are read; it runs synchronously within the logging call and keeps
// no reference to the stack afterwards.
//
// Per scope: the sentinel contributes nothing; a fields scope merges
// its entries into Properties (inner scopes overwrite outer ones for
// the same key) and, when it carries a string-valued TemplateKey,
// appends the resolved template to Scopes; an opaque scope appends
// its display form.
func Aggregate(st *Stack, rec *core.Record) {
	if st == nil || rec == nil {
		return
	}
	st.ForEach(func(s Scope) {
		aggregateOne(s, rec)
	})
}

func aggregateOne(s Scope, rec *core.Record) {
	switch s.kind {
	case KindNone:
		// Sentinel carries zero information.
	case KindFields:
		var template string
		hasTemplate := false
		for _, f := range s.fields {
			if !serializable(f.Value) {
				continue
			}
			if f.Key == TemplateKey {
				if str, ok := f.Value.(string); ok {
					template = str
					hasTemplate = true
					continue
				}
			}
			rec.Properties[f.Key] = f.Value
		}
		if hasTemplate {
			// Resolution runs against the cumulative map, so a
			// template may reference properties from enclosing
			// scopes.
			rec.Scopes = append(rec.Scopes, expand(template, rec.Properties))
		}
	case KindValue:
		rec.Scopes = append(rec.Scopes, display(s.value))
	}
}

// serializable reports whether a field value can be carried as a
// property. Opaque runtime handles (functions, channels, unsafe
// pointers) are skipped at single-entry granularity.
func serializable(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return false
	default:
		return true
	}
}

// expand substitutes every {key} placeholder with the display form of
// props[key] in a single left-to-right pass. Substituted text is not
// rescanned and unknown placeholders are left literal.
func expand(template string, props map[string]any) string {
	if !strings.Contains(template, "{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16)
	for {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			b.WriteString(template)
			break
		}
		end := strings.IndexByte(template[open:], '}')
		if end < 0 {
			b.WriteString(template)
			break
		}
		end += open

		b.WriteString(template[:open])
		key := template[open+1 : end]
		if v, ok := props[key]; ok {
			b.WriteString(display(v))
		} else {
			b.WriteString(template[open : end+1])
		}
		template = template[end+1:]
	}
	return b.String()
}

func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
