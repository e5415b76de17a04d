package scope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_PushAndEnd(t *testing.T) {
	t.Parallel()

	st := NewStack()
	require.Equal(t, 0, st.Depth())

	outer := st.Push(Value("outer"))
	inner := st.Push(Value("inner"))
	require.Equal(t, 2, st.Depth())

	inner.End()
	require.Equal(t, 1, st.Depth())

	outer.End()
	require.Equal(t, 0, st.Depth())
}

func TestStack_TraversalOrderIsOuterToInner(t *testing.T) {
	t.Parallel()

	st := NewStack()
	st.Push(Value("a"))
	st.Push(Value("b"))
	st.Push(Value("c"))

	var seen []string
	st.ForEach(func(s Scope) {
		seen = append(seen, display(s.value))
	})

	require.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestStack_EndIsIdempotent(t *testing.T) {
	t.Parallel()

	st := NewStack()
	h := st.Push(Value("a"))
	st.Push(Value("b"))

	h.End()
	h.End()
	require.Equal(t, 0, st.Depth())
}

func TestStack_OutOfOrderEndRemovesInnerScopes(t *testing.T) {
	t.Parallel()

	st := NewStack()
	outer := st.Push(Value("outer"))
	st.Push(Value("inner"))

	// Ending the outer handle first must not leave the inner scope
	// dangling.
	outer.End()
	require.Equal(t, 0, st.Depth())
}

func TestNopHandle(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		Nop.End()
		Nop.End()
	})
}

func TestCapture(t *testing.T) {
	t.Parallel()

	require.Equal(t, KindNone, Capture(nil).Kind())
	require.Equal(t, KindFields, Capture([]Field{{Key: "k", Value: 1}}).Kind())
	require.Equal(t, KindFields, Capture(Field{Key: "k", Value: 1}).Kind())
	require.Equal(t, KindFields, Capture(map[string]any{"k": 1}).Kind())
	require.Equal(t, KindValue, Capture("just text").Kind())

	// An existing Scope passes through unchanged.
	s := Fields(Field{Key: "k", Value: 1})
	require.Equal(t, s, Capture(s))
}

func TestCapture_MapOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	s := Capture(map[string]any{"b": 2, "a": 1, "c": 3})
	require.Equal(t, []Field{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}}, s.fields)
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	require.Nil(t, FromContext(context.Background()))

	st := NewStack()
	ctx := NewContext(context.Background(), st)
	require.Same(t, st, FromContext(ctx))
}
