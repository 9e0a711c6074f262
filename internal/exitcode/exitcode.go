package exitcode

import (
	goerrors "errors"
	"os"
	"strings"

	"github.com/felixgeelhaar/phaseline/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ConflictDetected indicates a concurrent group was denied or the
	// backlog scan found resource conflicts
	ConflictDetected = 3

	// BlockedBacklog indicates the scheduler reported blocked items under --strict
	BlockedBacklog = 4

	// Interrupted indicates the operation was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	// Coded errors carry their category explicitly
	var perr *errors.PhaselineError
	if goerrors.As(err, &perr) {
		switch {
		case strings.HasPrefix(string(perr.Code), "CONFLICT-"):
			return ConflictDetected
		case perr.Code == errors.ErrCodeSchedBlocked:
			return BlockedBacklog
		case perr.Code == errors.ErrCodeBacklogFormat:
			return UsageError
		default:
			return GeneralError
		}
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "conflict") && strings.Contains(errMsg, "denied") {
		return ConflictDetected
	}
	if strings.Contains(errMsg, "blocked item") {
		return BlockedBacklog
	}
	if strings.Contains(errMsg, "invalid flag") || strings.Contains(errMsg, "unknown command") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "missing argument") {
		return UsageError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case ConflictDetected:
		return "Resource conflict detected"
	case BlockedBacklog:
		return "Backlog contains blocked items"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
