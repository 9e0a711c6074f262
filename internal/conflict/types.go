// Package conflict judges whether work items that are
// dependency-eligible for concurrent execution are actually safe to
// run together given overlapping resource usage. Like the scheduler,
// everything here is a pure function of its input.
package conflict

import (
	"github.com/felixgeelhaar/phaseline/internal/domain"
)

// Verdict is the allow/deny decision for a proposed concurrent group
type Verdict struct {
	Allowed         bool     `json:"allowed" yaml:"allowed"`
	Confidence      int      `json:"confidence" yaml:"confidence"`
	Reason          string   `json:"reason" yaml:"reason"`
	RiskFactors     []string `json:"risk_factors,omitempty" yaml:"risk_factors,omitempty"`
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// Type classifies a cross-item conflict found by the backlog scan
type Type string

const (
	// TypeFile marks a path modified by more than one item
	TypeFile Type = "file_conflict"
	// TypeDependency marks a path modified by one item but referenced by others
	TypeDependency Type = "dependency_conflict"
)

// Severity grades how dangerous a conflict is
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Record is one conflict finding from the backlog-wide scan
type Record struct {
	Type           Type            `json:"type" yaml:"type"`
	FilePath       string          `json:"file_path" yaml:"file_path"`
	Items          []domain.ItemID `json:"items" yaml:"items"`
	Severity       Severity        `json:"severity" yaml:"severity"`
	Recommendation string          `json:"recommendation,omitempty" yaml:"recommendation,omitempty"`
}
