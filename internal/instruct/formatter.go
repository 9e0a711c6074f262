package instruct

import (
	"fmt"
	"sort"
	"strings"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/conflict"
	"github.com/felixgeelhaar/phaseline/internal/domain"
	"github.com/felixgeelhaar/phaseline/internal/schedule"
)

// Formatter turns scheduler output into directed instructions. The
// exact wording is presentation, not contract, except that multi-item
// instructions always enumerate every id and always say concurrent,
// not sequential.
type Formatter struct {
	Classifier *Classifier
	Analyzer   *conflict.Analyzer
}

// NewFormatter builds a formatter with the default classifier and
// conflict analyzer
func NewFormatter() *Formatter {
	return &Formatter{
		Classifier: DefaultClassifier(),
		Analyzer:   conflict.NewAnalyzer(),
	}
}

// NextAction renders the single next instruction for the current
// scheduling round: a completion notice, the unmet dependencies that
// stall the backlog, or a directive for the runnable item(s).
func (f *Formatter) NextAction(s *backlog.Snapshot, r schedule.Result) string {
	if len(s.Outstanding()) == 0 {
		return "All work items are complete. Nothing left to schedule."
	}

	if len(r.RunnableNow) == 0 {
		return f.renderStalled(s, r)
	}

	if len(r.RunnableNow) == 1 {
		item, _ := s.Item(r.RunnableNow[0])
		return fmt.Sprintf("Start %s (%s).", item.ID, f.Classifier.Assignment(item))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Start these %d items concurrently, not sequentially:\n", len(r.RunnableNow))
	for _, id := range r.RunnableNow {
		item, _ := s.Item(id)
		fmt.Fprintf(&b, "  - %s (%s)\n", id, f.Classifier.Assignment(item))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderStalled names the dependency ids that keep every pending item
// from starting, never a bare "nothing to do"
func (f *Formatter) renderStalled(s *backlog.Snapshot, r schedule.Result) string {
	var b strings.Builder
	b.WriteString("No items can start right now.\n")

	if unmet := unmetDependencies(s, r.Blocked); len(unmet) > 0 {
		fmt.Fprintf(&b, "Unmet dependencies blocking progress: %s\n", joinIDs(unmet))
	}
	for _, blocked := range r.Blocked {
		fmt.Fprintf(&b, "  - %s: %s\n", blocked.ID, blocked.Reason)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FullPlan renders one block per phase in order, applying the conflict
// analyzer's verdict to each multi-item phase, then a count summary.
func (f *Formatter) FullPlan(s *backlog.Snapshot, r schedule.Result) string {
	var b strings.Builder

	if len(s.Outstanding()) == 0 {
		b.WriteString("All work items are complete. Nothing left to schedule.\n")
	} else if len(r.Phases) == 0 {
		b.WriteString(f.renderStalled(s, r))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Execution plan: %s\n", pluralize(len(r.Phases), "phase"))
		for _, phase := range r.Phases {
			b.WriteString("\n")
			f.renderPhase(&b, s, phase)
		}
	}

	if len(r.Blocked) > 0 && len(r.Phases) > 0 {
		fmt.Fprintf(&b, "\nBlocked (%d):\n", len(r.Blocked))
		for _, blocked := range r.Blocked {
			fmt.Fprintf(&b, "  - %s: %s\n", blocked.ID, blocked.Reason)
		}
	}

	total := len(s.Outstanding())
	fmt.Fprintf(&b, "\nSummary: %s total, %d executable, %d blocked",
		pluralize(total, "item"), r.TotalScheduled(), len(r.Blocked))
	return b.String()
}

// renderPhase writes one phase block. A denied conflict verdict
// overrides the dependency-level concurrency with sequential wording.
func (f *Formatter) renderPhase(b *strings.Builder, s *backlog.Snapshot, phase schedule.Phase) {
	items := materialize(s, phase.Items)

	switch {
	case len(items) == 1:
		fmt.Fprintf(b, "Phase %d: run 1 item\n", phase.Index+1)
	default:
		verdict := f.Analyzer.AssessGroup(items)
		if verdict.Allowed {
			fmt.Fprintf(b, "Phase %d: start %d items concurrently, not sequentially\n",
				phase.Index+1, len(items))
		} else {
			fmt.Fprintf(b, "Phase %d: run %d items sequentially in the listed order (%s)\n",
				phase.Index+1, len(items), verdict.Reason)
		}
	}

	for _, item := range items {
		fmt.Fprintf(b, "  - %s (%s)\n", item.ID, f.Classifier.Assignment(item))
	}
}

// materialize resolves phase item ids back to snapshot items
func materialize(s *backlog.Snapshot, ids []domain.ItemID) []backlog.Item {
	items := make([]backlog.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.Item(id); ok {
			items = append(items, item)
		}
	}
	return items
}

// unmetDependencies collects the dependency ids of blocked items that
// are not satisfied by a completed item, sorted for stable output
func unmetDependencies(s *backlog.Snapshot, blocked []schedule.BlockedItem) []domain.ItemID {
	completed := s.Completed()
	seen := make(map[domain.ItemID]bool)
	var unmet []domain.ItemID

	for _, entry := range blocked {
		item, ok := s.Item(entry.ID)
		if !ok {
			continue
		}
		for _, dep := range item.DependencyIDs() {
			if completed[dep] || seen[dep] {
				continue
			}
			seen[dep] = true
			unmet = append(unmet, dep)
		}
	}

	sort.Slice(unmet, func(i, j int) bool { return unmet[i] < unmet[j] })
	return unmet
}

func joinIDs(ids []domain.ItemID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// NextAction renders the next instruction with the default formatter
func NextAction(s *backlog.Snapshot, r schedule.Result) string {
	return NewFormatter().NextAction(s, r)
}

// FullPlan renders the whole plan with the default formatter
func FullPlan(s *backlog.Snapshot, r schedule.Result) string {
	return NewFormatter().FullPlan(s, r)
}
