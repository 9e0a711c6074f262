// Package schedule partitions a backlog snapshot into ordered
// concurrency phases. Scheduling is a pure function of the snapshot:
// no state survives between calls, so two calls on the same snapshot
// always produce the same result.
package schedule

import (
	"github.com/felixgeelhaar/phaseline/internal/domain"
)

// Phase is one round of concurrently eligible items.
// Phases are ephemeral derived values, recomputed on every pass.
type Phase struct {
	Index int             `json:"index" yaml:"index"`
	Items []domain.ItemID `json:"items" yaml:"items"`

	// Groups annotates items within the phase that share an identical
	// prerequisite-id set. Purely informational: it never changes the
	// authoritative phase partition. Only groups with two or more
	// members are reported.
	Groups [][]domain.ItemID `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// BlockedItem is an outstanding item that cannot be scheduled
type BlockedItem struct {
	ID     domain.ItemID `json:"id" yaml:"id"`
	Reason string        `json:"reason" yaml:"reason"`
}

// Result is the outcome of one scheduling pass.
// Every outstanding item appears in exactly one phase or in Blocked.
type Result struct {
	// RunnableNow lists the ids immediately eligible to start: the
	// items of the first phase, if any
	RunnableNow []domain.ItemID `json:"runnable_now" yaml:"runnable_now"`
	Phases      []Phase         `json:"phases" yaml:"phases"`
	Blocked     []BlockedItem   `json:"blocked" yaml:"blocked"`
}

// TotalScheduled returns the number of items placed into phases
func (r Result) TotalScheduled() int {
	n := 0
	for _, phase := range r.Phases {
		n += len(phase.Items)
	}
	return n
}

// IsBlocked reports whether the given id landed in Blocked
func (r Result) IsBlocked(id domain.ItemID) bool {
	for _, b := range r.Blocked {
		if b.ID == id {
			return true
		}
	}
	return false
}
