package scope

import (
	"context"
	"sync"
)

// Handle pops its scope from the stack when ended. End is idempotent.
type Handle interface {
	End()
}

type nopHandle struct{}

func (nopHandle) End() {}

// Nop is the shared handle returned when no stack is configured.
// Ending it does nothing.
var Nop Handle = nopHandle{}

// Stack is an explicit, per-call-context scope stack. Logging calls
// traverse whatever is on the stack at the moment of the call;
// the stack never retains a reference to a record.
type Stack struct {
	mu     sync.Mutex
	scopes []Scope
}

// NewStack creates an empty scope stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends a scope and returns the handle that removes it.
// Ending a handle also removes any scopes pushed after it, so an
// out-of-order End cannot leave orphaned inner scopes behind.
func (st *Stack) Push(s Scope) Handle {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.scopes = append(st.scopes, s)
	return &popHandle{stack: st, depth: len(st.scopes) - 1}
}

// Depth returns the number of currently active scopes.
func (st *Stack) Depth() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.scopes)
}

// ForEach invokes fn once per active scope, outermost first. It
// iterates over a snapshot, so fn may push or pop without deadlocking;
// such changes are not visible to the ongoing traversal.
func (st *Stack) ForEach(fn func(Scope)) {
	st.mu.Lock()
	snapshot := make([]Scope, len(st.scopes))
	copy(snapshot, st.scopes)
	st.mu.Unlock()

	for _, s := range snapshot {
		fn(s)
	}
}

type popHandle struct {
	stack *Stack
	depth int
	once  sync.Once
}

func (h *popHandle) End() {
	h.once.Do(func() {
		h.stack.mu.Lock()
		defer h.stack.mu.Unlock()
		if len(h.stack.scopes) > h.depth {
			h.stack.scopes = h.stack.scopes[:h.depth]
		}
	})
}

type ctxKey struct{}

// NewContext returns a context carrying the given stack.
func NewContext(ctx context.Context, st *Stack) context.Context {
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext returns the stack carried by ctx, or nil when none is
// attached.
func FromContext(ctx context.Context) *Stack {
	st, _ := ctx.Value(ctxKey{}).(*Stack)
	return st
}
