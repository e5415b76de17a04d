package scope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlehnert/scopelog/core"
)

func newRecord() *core.Record {
	return core.NewRecord("App", core.InformationLevel, core.EventID{}, "msg", nil)
}

func TestAggregate_TemplateScope(t *testing.T) {
	t.Parallel()

	st := NewStack()
	st.Push(Fields(
		Field{Key: TemplateKey, Value: "Hello {Name}"},
		Field{Key: "Name", Value: "Ann"},
	))

	rec := newRecord()
	Aggregate(st, rec)

	require.Equal(t, []string{"Hello Ann"}, rec.Scopes)
	require.Equal(t, map[string]any{"Name": "Ann"}, rec.Properties)
}

func TestAggregate_NestedCumulativeTemplate(t *testing.T) {
	t.Parallel()

	st := NewStack()
	st.Push(Fields(Field{Key: "A", Value: "1"}))
	st.Push(Fields(
		Field{Key: TemplateKey, Value: "{A}-{B}"},
		Field{Key: "B", Value: "2"},
	))

	rec := newRecord()
	Aggregate(st, rec)

	// The inner template resolves against the cumulative map, so it
	// sees the outer scope's property.
	require.Equal(t, []string{"1-2"}, rec.Scopes)
	require.Equal(t, map[string]any{"A": "1", "B": "2"}, rec.Properties)
}

func TestAggregate_SentinelContributesNothing(t *testing.T) {
	t.Parallel()

	st := NewStack()
	st.Push(None())

	rec := newRecord()
	Aggregate(st, rec)

	require.Empty(t, rec.Scopes)
	require.Empty(t, rec.Properties)
}

func TestAggregate_OpaqueValueUsesDisplayForm(t *testing.T) {
	t.Parallel()

	st := NewStack()
	st.Push(Value("transaction 17"))
	st.Push(Value(42))

	rec := newRecord()
	Aggregate(st, rec)

	require.Equal(t, []string{"transaction 17", "42"}, rec.Scopes)
	require.Empty(t, rec.Properties)
}

func TestAggregate_SkipsNonSerializableEntries(t *testing.T) {
	t.Parallel()

	st := NewStack()
	st.Push(Fields(
		Field{Key: "fn", Value: func() {}},
		Field{Key: "ch", Value: make(chan int)},
		Field{Key: "ok", Value: "yes"},
	))

	rec := newRecord()
	Aggregate(st, rec)

	require.Equal(t, map[string]any{"ok": "yes"}, rec.Properties)
}

func TestAggregate_LastWriterWins(t *testing.T) {
	t.Parallel()

	st := NewStack()
	st.Push(Fields(Field{Key: "user", Value: "outer"}))
	st.Push(Fields(Field{Key: "user", Value: "inner"}))

	rec := newRecord()
	Aggregate(st, rec)

	require.Equal(t, "inner", rec.Properties["user"])
}

func TestAggregate_FieldsWithoutTemplateAppendNothing(t *testing.T) {
	t.Parallel()

	st := NewStack()
	st.Push(Fields(Field{Key: "k", Value: "v"}))

	rec := newRecord()
	Aggregate(st, rec)

	require.Empty(t, rec.Scopes)
	require.Equal(t, map[string]any{"k": "v"}, rec.Properties)
}

func TestAggregate_NonStringTemplateValueBecomesProperty(t *testing.T) {
	t.Parallel()

	st := NewStack()
	st.Push(Fields(Field{Key: TemplateKey, Value: 7}))

	rec := newRecord()
	Aggregate(st, rec)

	require.Empty(t, rec.Scopes)
	require.Equal(t, 7, rec.Properties[TemplateKey])
}

func TestAggregate_NilStackIsNoop(t *testing.T) {
	t.Parallel()

	rec := newRecord()
	Aggregate(nil, rec)

	require.Empty(t, rec.Scopes)
	require.Empty(t, rec.Properties)
}

func TestExpand(t *testing.T) {
	t.Parallel()

	props := map[string]any{"a": "x", "n": 3}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"no placeholders", "plain", "plain"},
		{"single", "v={a}", "v=x"},
		{"repeated", "{a}{a}{a}", "xxx"},
		{"numeric display form", "{n} items", "3 items"},
		{"unknown stays literal", "{missing}", "{missing}"},
		{"unterminated brace", "oops {a", "oops {a"},
		{"mixed", "{a}-{missing}-{n}", "x-{missing}-3"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, expand(tt.template, props))
		})
	}
}
