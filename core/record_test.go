package core

import (
	"errors"
	"testing"
)

func TestEventID_String(t *testing.T) {
	tests := []struct {
		name string
		id   EventID
		want string
	}{
		{"zero value", EventID{}, "0"},
		{"id only", EventID{ID: 7}, "7"},
		{"name wins over id", EventID{ID: 7, Name: "UserLoggedIn"}, "UserLoggedIn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("EventID.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewRecord(t *testing.T) {
	err := errors.New("boom")
	rec := NewRecord("App", ErrorLevel, EventID{ID: 7}, "it failed", err)

	if rec.Category != "App" {
		t.Errorf("Category = %q, want %q", rec.Category, "App")
	}
	if rec.Level != ErrorLevel {
		t.Errorf("Level = %v, want %v", rec.Level, ErrorLevel)
	}
	if rec.Message != "it failed" {
		t.Errorf("Message = %q, want %q", rec.Message, "it failed")
	}
	if rec.Err != err {
		t.Errorf("Err = %v, want %v", rec.Err, err)
	}
	if rec.Properties == nil {
		t.Error("Properties map not initialized")
	}
	if len(rec.Scopes) != 0 {
		t.Errorf("Scopes = %v, want empty", rec.Scopes)
	}
}
