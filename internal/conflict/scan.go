package conflict

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/domain"
)

// ScanBacklog inspects the whole candidate set for resource overlap
// between arbitrary item pairs.
//
// A path modified by more than one item is a high-severity file
// conflict. A path modified by exactly one item but referenced by
// others is a medium-severity dependency conflict: the modifier should
// be sequenced first. Findings are ordered by path for determinism.
func (a *Analyzer) ScanBacklog(items []backlog.Item) []Record {
	type pathUsage struct {
		touchers  map[domain.ItemID]bool
		modifiers map[domain.ItemID]bool
		order     []domain.ItemID
	}

	usage := make(map[string]*pathUsage)
	for _, item := range items {
		for _, t := range item.Touches {
			if t.Path == "" {
				continue
			}
			u := usage[t.Path]
			if u == nil {
				u = &pathUsage{
					touchers:  make(map[domain.ItemID]bool),
					modifiers: make(map[domain.ItemID]bool),
				}
				usage[t.Path] = u
			}
			if !u.touchers[item.ID] {
				u.touchers[item.ID] = true
				u.order = append(u.order, item.ID)
			}
			if t.Kind == backlog.ChangeModify {
				u.modifiers[item.ID] = true
			}
		}
	}

	paths := make([]string, 0, len(usage))
	for p := range usage {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var records []Record
	for _, p := range paths {
		u := usage[p]

		switch {
		case len(u.modifiers) > 1:
			records = append(records, Record{
				Type:           TypeFile,
				FilePath:       p,
				Items:          pickItems(u.order, u.modifiers),
				Severity:       SeverityHigh,
				Recommendation: "multiple items modify this path, do not run them concurrently",
			})

		case len(u.modifiers) == 1 && len(u.touchers) > 1:
			modifier := pickItems(u.order, u.modifiers)[0]
			records = append(records, Record{
				Type:           TypeDependency,
				FilePath:       p,
				Items:          modifierFirst(u.order, modifier),
				Severity:       SeverityMedium,
				Recommendation: fmt.Sprintf("sequence %s before the items that reference this path", modifier),
			})
		}
	}
	return records
}

// pickItems filters the ordered toucher list down to the given set
func pickItems(order []domain.ItemID, set map[domain.ItemID]bool) []domain.ItemID {
	var out []domain.ItemID
	for _, id := range order {
		if set[id] {
			out = append(out, id)
		}
	}
	return out
}

// modifierFirst reorders the toucher list so the modifier leads
func modifierFirst(order []domain.ItemID, modifier domain.ItemID) []domain.ItemID {
	out := []domain.ItemID{modifier}
	for _, id := range order {
		if id != modifier {
			out = append(out, id)
		}
	}
	return out
}

// ScanBacklog scans a candidate set with the default analyzer
func ScanBacklog(items []backlog.Item) []Record {
	return NewAnalyzer().ScanBacklog(items)
}

// ScanReport wraps scan findings with provenance, mirroring the
// scheduler's report wrapper
type ScanReport struct {
	ReportID       string    `json:"report_id" yaml:"report_id"`
	SnapshotDigest string    `json:"snapshot_digest" yaml:"snapshot_digest"`
	GeneratedAt    time.Time `json:"generated_at" yaml:"generated_at"`
	Conflicts      []Record  `json:"conflicts" yaml:"conflicts"`
}

// NewScanReport scans a snapshot and stamps the findings with a fresh
// report id and the snapshot digest
func NewScanReport(s *backlog.Snapshot) (*ScanReport, error) {
	digest, err := backlog.Digest(s)
	if err != nil {
		return nil, err
	}

	return &ScanReport{
		ReportID:       uuid.NewString(),
		SnapshotDigest: digest,
		GeneratedAt:    time.Now().UTC(),
		Conflicts:      NewAnalyzer().ScanBacklog(s.Items()),
	}, nil
}
