package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeBacklogNotFound, "test error message")

	if err.Code != ErrCodeBacklogNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeBacklogNotFound, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "failed to read file", cause)

	if err.Code != ErrCodeFileReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeFileReadFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *PhaselineError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeBacklogSchemaInvalid, "invalid backlog"),
			wantCode: "BACKLOG-004",
			wantMsg:  "invalid backlog",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFileReadFailed, "read failed", fmt.Errorf("permission denied")),
			wantCode: "IO-002",
			wantMsg:  "permission denied",
		},
		{
			name:     "item dependency error",
			err:      NewItemDepMalformedError("task-7", "mapping has no id field"),
			wantCode: "ITEM-003",
			wantMsg:  "task-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	err := New(ErrCodeBacklogNotFound, "backlog not found").
		WithSuggestion("Check the file path")

	if len(err.Suggestions) != 1 {
		t.Errorf("expected 1 suggestion, got %d", len(err.Suggestions))
	}

	if err.Suggestions[0] != "Check the file path" {
		t.Errorf("unexpected suggestion: %s", err.Suggestions[0])
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "Suggestions:") {
		t.Errorf("error string should contain suggestions section, got: %s", errStr)
	}
}

func TestWithDocs(t *testing.T) {
	err := New(ErrCodeConflictItemUnknown, "item not found").
		WithDocs("https://github.com/felixgeelhaar/phaseline#conflicts")

	errStr := err.Error()
	if !strings.Contains(errStr, "Documentation: https://github.com/felixgeelhaar/phaseline#conflicts") {
		t.Errorf("error string should contain documentation link, got: %s", errStr)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *PhaselineError
		code ErrorCode
	}{
		{"backlog not found", NewBacklogNotFoundError("backlog.yaml"), ErrCodeBacklogNotFound},
		{"schema invalid", NewBacklogSchemaError("backlog.json", fmt.Errorf("missing id")), ErrCodeBacklogSchemaInvalid},
		{"unsupported format", NewBacklogFormatError("backlog.toml"), ErrCodeBacklogFormat},
		{"duplicate item", NewItemDuplicateError("task-1"), ErrCodeItemDuplicate},
		{"unknown group member", NewConflictItemUnknownError("task-9"), ErrCodeConflictItemUnknown},
		{"rules invalid", NewInstructRulesError("rules.yaml", fmt.Errorf("bad yaml")), ErrCodeInstructRulesInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if len(tt.err.Suggestions) == 0 {
				t.Errorf("constructor should attach at least one suggestion")
			}
		})
	}
}
