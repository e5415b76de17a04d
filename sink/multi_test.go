package sink

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
)

type failingSink struct {
	writeErr error
	closeErr error
}

func (f *failingSink) WriteEntry(string) error { return f.writeErr }
func (f *failingSink) Close() error            { return f.closeErr }

func TestMulti_FansOut(t *testing.T) {
	a := NewMemory()
	b := NewMemory()
	m := NewMulti(a, b)

	if err := m.WriteEntry("shared"); err != nil {
		t.Fatalf("WriteEntry() error: %v", err)
	}
	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("entries = (%d, %d), want (1, 1)", a.Len(), b.Len())
	}
}

func TestMulti_CombinesErrorsAndKeepsWriting(t *testing.T) {
	bad := &failingSink{writeErr: errors.New("disk gone")}
	good := NewMemory()
	m := NewMulti(bad, good)

	err := m.WriteEntry("entry")
	if err == nil {
		t.Fatal("WriteEntry() = nil, want error")
	}
	// The failing child must not stop delivery to the healthy one.
	if good.Len() != 1 {
		t.Errorf("healthy sink got %d entries, want 1", good.Len())
	}
}

func TestMulti_CloseCombinesErrors(t *testing.T) {
	a := &failingSink{closeErr: errors.New("close a")}
	b := &failingSink{closeErr: errors.New("close b")}
	m := NewMulti(a, b)

	err := m.Close()
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("combined %d errors, want 2: %v", got, err)
	}
}
