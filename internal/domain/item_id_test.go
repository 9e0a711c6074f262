package domain

import (
	"strings"
	"testing"
)

func TestNewItemID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple id", "task-001", false},
		{"uppercase id", "AUTH-42", false},
		{"underscore id", "fix_login_bug", false},
		{"single char", "a", false},
		{"empty", "", true},
		{"internal space", "task 001", true},
		{"tab", "task\t001", true},
		{"newline", "task\n001", true},
		{"too long", strings.Repeat("x", 201), true},
		{"max length", strings.Repeat("x", 200), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewItemID(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewItemID(%q) expected error, got none", tt.value)
				}
				return
			}
			if err != nil {
				t.Errorf("NewItemID(%q) unexpected error: %v", tt.value, err)
			}
			if id.String() != tt.value {
				t.Errorf("String() = %q, want %q", id.String(), tt.value)
			}
		})
	}
}

func TestItemIDEquals(t *testing.T) {
	a := ItemID("task-1")
	b := ItemID("task-1")
	c := ItemID("task-2")

	if !a.Equals(b) {
		t.Error("identical ids should be equal")
	}
	if a.Equals(c) {
		t.Error("different ids should not be equal")
	}
}
