package ux

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/phaseline/internal/errors"
)

// ErrorWithSuggestion wraps an error with a recovery suggestion
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError adds a contextual recovery suggestion to common
// failure modes. Coded errors carry their own suggestions and pass
// through unchanged.
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}
	if perr, ok := err.(*errors.PhaselineError); ok && len(perr.Suggestions) > 0 {
		return err
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "no such file or directory") {
		if strings.Contains(errMsg, "backlog") {
			return NewErrorWithSuggestion(err,
				"Point --in at your backlog file, or create .phaseline/backlog.yaml")
		}
		if strings.Contains(errMsg, "rules") {
			return NewErrorWithSuggestion(err,
				"Check the --rules path or omit it to use the built-in keyword table")
		}
		return NewErrorWithSuggestion(err,
			"Check the file path and try again")
	}

	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check file permissions on the backlog file and its directory")
	}

	if strings.Contains(errMsg, "yaml:") || strings.Contains(errMsg, "cannot unmarshal") {
		return NewErrorWithSuggestion(err,
			"The file did not parse; validate its YAML/JSON syntax and the items list shape")
	}

	return err
}

// FormatError provides consistent error formatting with context
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
