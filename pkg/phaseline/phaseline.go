// Package phaseline is the public embedding surface for the scheduler
// core: load a backlog snapshot, partition it into concurrency phases,
// judge concurrent groups for resource conflicts, and render directed
// instructions. Everything here delegates to the internal packages so
// library consumers and the CLI share one implementation.
package phaseline

import (
	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/conflict"
	"github.com/felixgeelhaar/phaseline/internal/domain"
	"github.com/felixgeelhaar/phaseline/internal/instruct"
	"github.com/felixgeelhaar/phaseline/internal/schedule"
)

// Core types re-exported for library consumers.
type (
	ItemID      = domain.ItemID
	Category    = domain.Category
	Item        = backlog.Item
	Dependency  = backlog.Dependency
	FileTouch   = backlog.FileTouch
	ChangeKind  = backlog.ChangeKind
	Status      = backlog.Status
	Snapshot    = backlog.Snapshot
	Result      = schedule.Result
	Phase       = schedule.Phase
	BlockedItem = schedule.BlockedItem
	Report      = schedule.Report
	Verdict     = conflict.Verdict
	Record      = conflict.Record
	ScanReport  = conflict.ScanReport
	Classifier  = instruct.Classifier
)

const (
	StatusPending    = backlog.StatusPending
	StatusInProgress = backlog.StatusInProgress
	StatusCompleted  = backlog.StatusCompleted

	ChangeNew    = backlog.ChangeNew
	ChangeModify = backlog.ChangeModify
	ChangeOther  = backlog.ChangeOther
)

// NewSnapshot builds an immutable snapshot from a list of work items
func NewSnapshot(items []Item) (*Snapshot, error) {
	return backlog.NewSnapshot(items)
}

// LoadSnapshot reads a snapshot from a YAML or JSON backlog file
func LoadSnapshot(path string) (*Snapshot, error) {
	return backlog.Load(path)
}

// Schedule partitions a snapshot into ordered concurrency phases
func Schedule(s *Snapshot) Result {
	return schedule.Schedule(s)
}

// NewReport runs a scheduling pass and stamps it with provenance
func NewReport(s *Snapshot) (*Report, error) {
	return schedule.NewReport(s)
}

// AssessGroup judges whether the given items are safe to run concurrently
func AssessGroup(items []Item) Verdict {
	return conflict.AssessGroup(items)
}

// ScanBacklog inspects the whole candidate set for cross-item resource overlap
func ScanBacklog(items []Item) []Record {
	return conflict.ScanBacklog(items)
}

// NewScanReport runs a backlog scan and stamps it with provenance
func NewScanReport(s *Snapshot) (*ScanReport, error) {
	return conflict.NewScanReport(s)
}

// NextAction renders the single next instruction for a scheduling round
func NextAction(s *Snapshot, r Result) string {
	return instruct.NextAction(s, r)
}

// FullPlan renders the whole phased plan as instructional text
func FullPlan(s *Snapshot, r Result) string {
	return instruct.FullPlan(s, r)
}
