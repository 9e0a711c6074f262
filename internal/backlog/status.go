package backlog

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Status represents the lifecycle state of a work item.
// External stores spell statuses inconsistently; ParseStatus resolves
// the documented aliases to a canonical value.
type Status string

const (
	// StatusPending is work that has not started (aliases: todo, open, ready)
	StatusPending Status = "pending"
	// StatusInProgress is work that is already executing (aliases: doing, active, wip).
	// In-progress items are still outstanding: they participate in phases
	// like pending items do.
	StatusInProgress Status = "in_progress"
	// StatusCompleted is finished work (aliases: done, finished, closed)
	StatusCompleted Status = "completed"
)

// statusAliases maps every accepted spelling to its canonical status
var statusAliases = map[string]Status{
	"pending":     StatusPending,
	"todo":        StatusPending,
	"to-do":       StatusPending,
	"open":        StatusPending,
	"ready":       StatusPending,
	"in_progress": StatusInProgress,
	"in-progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"doing":       StatusInProgress,
	"active":      StatusInProgress,
	"wip":         StatusInProgress,
	"completed":   StatusCompleted,
	"complete":    StatusCompleted,
	"done":        StatusCompleted,
	"finished":    StatusCompleted,
	"closed":      StatusCompleted,
}

// ParseStatus resolves a raw status string to its canonical value.
// Unknown or empty statuses resolve to pending, the safe default:
// treating unknown work as outstanding can only delay it, never skip it.
func ParseStatus(raw string) Status {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if status, ok := statusAliases[normalized]; ok {
		return status
	}
	return StatusPending
}

// String returns the canonical string representation
func (s Status) String() string {
	return string(s)
}

// UnmarshalYAML resolves status aliases while decoding YAML
func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}

// UnmarshalJSON resolves status aliases while decoding JSON
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}
