package exitcode

import (
	"fmt"
	"testing"

	"github.com/felixgeelhaar/phaseline/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"plain error", fmt.Errorf("something broke"), GeneralError},
		{"conflict code", errors.New(errors.ErrCodeConflictItemUnknown, "item not found"), ConflictDetected},
		{"blocked code", errors.New(errors.ErrCodeSchedBlocked, "3 blocked items"), BlockedBacklog},
		{"format code", errors.New(errors.ErrCodeBacklogFormat, "unsupported backlog format"), UsageError},
		{"backlog code", errors.New(errors.ErrCodeBacklogNotFound, "no backlog"), GeneralError},
		{"wrapped coded error", fmt.Errorf("run: %w", errors.New(errors.ErrCodeSchedBlocked, "blocked")), BlockedBacklog},
		{"message fallback conflict", fmt.Errorf("group conflict: execution denied"), ConflictDetected},
		{"message fallback usage", fmt.Errorf("unknown command \"schedul\""), UsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetExitCodeDescription(t *testing.T) {
	if GetExitCodeDescription(Success) != "Success" {
		t.Error("unexpected description for Success")
	}
	if GetExitCodeDescription(ConflictDetected) != "Resource conflict detected" {
		t.Error("unexpected description for ConflictDetected")
	}
	if GetExitCodeDescription(99) != "Unknown error" {
		t.Error("unexpected description for unknown code")
	}
}
