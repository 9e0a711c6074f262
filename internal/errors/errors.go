package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Backlog errors (BACKLOG-001 to BACKLOG-099)
	ErrCodeBacklogNotFound      ErrorCode = "BACKLOG-001"
	ErrCodeBacklogUnmarshal     ErrorCode = "BACKLOG-002"
	ErrCodeBacklogMarshal       ErrorCode = "BACKLOG-003"
	ErrCodeBacklogSchemaInvalid ErrorCode = "BACKLOG-004"
	ErrCodeBacklogFormat        ErrorCode = "BACKLOG-005"

	// Item errors (ITEM-001 to ITEM-099)
	ErrCodeItemIDInvalid    ErrorCode = "ITEM-001"
	ErrCodeItemDuplicate    ErrorCode = "ITEM-002"
	ErrCodeItemDepMalformed ErrorCode = "ITEM-003"

	// Scheduling errors (SCHED-001 to SCHED-099)
	ErrCodeSchedBlocked ErrorCode = "SCHED-001"

	// Conflict errors (CONFLICT-001 to CONFLICT-099)
	ErrCodeConflictGroupEmpty   ErrorCode = "CONFLICT-001"
	ErrCodeConflictItemUnknown  ErrorCode = "CONFLICT-002"
	ErrCodeConflictRulesInvalid ErrorCode = "CONFLICT-003"
	ErrCodeConflictGroupDenied  ErrorCode = "CONFLICT-004"

	// Instruction errors (INSTRUCT-001 to INSTRUCT-099)
	ErrCodeInstructRulesNotFound ErrorCode = "INSTRUCT-001"
	ErrCodeInstructRulesInvalid  ErrorCode = "INSTRUCT-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
	ErrCodeDirectoryFailed ErrorCode = "IO-003"
)

// PhaselineError represents an enhanced error with code, suggestions, and documentation
type PhaselineError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *PhaselineError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PhaselineError) Unwrap() error {
	return e.Cause
}

// New creates a new PhaselineError
func New(code ErrorCode, message string) *PhaselineError {
	return &PhaselineError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PhaselineError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PhaselineError {
	return &PhaselineError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PhaselineError) WithSuggestion(suggestion string) *PhaselineError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PhaselineError) WithSuggestions(suggestions ...string) *PhaselineError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *PhaselineError) WithDocs(url string) *PhaselineError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewBacklogNotFoundError creates a backlog file not found error
func NewBacklogNotFoundError(path string) *PhaselineError {
	return New(ErrCodeBacklogNotFound, fmt.Sprintf("backlog file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Pass the backlog location with --in <file>").
		WithDocs("https://github.com/felixgeelhaar/phaseline#backlog-files")
}

// NewBacklogSchemaError creates a backlog schema validation error
func NewBacklogSchemaError(path string, cause error) *PhaselineError {
	return Wrap(ErrCodeBacklogSchemaInvalid, fmt.Sprintf("backlog file failed schema validation: %s", path), cause).
		WithSuggestion("Each item needs at least an 'id' field").
		WithSuggestion("Check dependency and touched-file entries for typos").
		WithDocs("https://github.com/felixgeelhaar/phaseline#backlog-schema")
}

// NewBacklogFormatError creates an unsupported backlog format error
func NewBacklogFormatError(path string) *PhaselineError {
	return New(ErrCodeBacklogFormat, fmt.Sprintf("unsupported backlog format: %s", path)).
		WithSuggestion("Use a .yaml, .yml, or .json backlog file")
}

// NewItemDuplicateError creates a duplicate item id error
func NewItemDuplicateError(id string) *PhaselineError {
	return New(ErrCodeItemDuplicate, fmt.Sprintf("duplicate item id: %s", id)).
		WithSuggestion("Item ids must be unique within a snapshot").
		WithSuggestion("Rename one of the conflicting items")
}

// NewItemDepMalformedError creates a malformed dependency descriptor error
func NewItemDepMalformedError(itemID string, detail string) *PhaselineError {
	return New(ErrCodeItemDepMalformed, fmt.Sprintf("item %s has a malformed dependency: %s", itemID, detail)).
		WithSuggestion("Dependencies are either a plain id string or a mapping with an 'id' field").
		WithDocs("https://github.com/felixgeelhaar/phaseline#dependencies")
}

// NewConflictGroupEmptyError signals a group request with no usable
// item ids
func NewConflictGroupEmptyError() *PhaselineError {
	return New(ErrCodeConflictGroupEmpty, "no item ids given for the group").
		WithSuggestion("Pass at least one item id with --group, e.g. --group T1,T2")
}

// NewConflictItemUnknownError creates an unknown group member error
func NewConflictItemUnknownError(id string) *PhaselineError {
	return New(ErrCodeConflictItemUnknown, fmt.Sprintf("item not found in snapshot: %s", id)).
		WithSuggestion("Run 'phaseline schedule' to list known item ids").
		WithSuggestion("Check the --group flag for typos")
}

// NewConflictGroupDeniedError signals that a proposed concurrent
// group failed the parallel-safety rules
func NewConflictGroupDeniedError(reason string) *PhaselineError {
	return New(ErrCodeConflictGroupDenied, fmt.Sprintf("concurrent execution denied: %s", reason)).
		WithSuggestion("Run the group's items sequentially").
		WithSuggestion("Split the group so no two items touch overlapping paths")
}

// NewSchedBlockedError signals that the backlog contains blocked items
func NewSchedBlockedError(count int) *PhaselineError {
	return New(ErrCodeSchedBlocked, fmt.Sprintf("backlog has %d blocked item(s)", count)).
		WithSuggestion("Inspect the blocked reasons in the schedule output").
		WithSuggestion("Fix unresolved dependency ids or break the dependency cycle")
}

// NewInstructRulesError creates a classifier rules loading error
func NewInstructRulesError(path string, cause error) *PhaselineError {
	return Wrap(ErrCodeInstructRulesInvalid, fmt.Sprintf("failed to load classifier rules: %s", path), cause).
		WithSuggestion("Rules files map each category to its keywords, e.g. 'frontend: [ui, widget]'").
		WithDocs("https://github.com/felixgeelhaar/phaseline#worker-categories")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *PhaselineError {
	return Wrap(ErrCodeBacklogUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
