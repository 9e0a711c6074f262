package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/domain"
)

// Schedule partitions the snapshot's outstanding items into ordered
// concurrency phases via repeated dependency-closure computation.
//
// An item enters phase N only if every dependency is already completed
// or scheduled in an earlier phase. When a round makes no progress,
// every remaining item is blocked (unresolved reference or cycle) and
// the pass terminates, so the algorithm always halts.
func Schedule(s *backlog.Snapshot) Result {
	satisfied := s.Completed()
	remaining := s.Outstanding()

	var phases []Phase
	for len(remaining) > 0 {
		var frontier []backlog.Item
		var rest []backlog.Item
		for _, item := range remaining {
			if dependenciesSatisfied(item, satisfied) {
				frontier = append(frontier, item)
			} else {
				rest = append(rest, item)
			}
		}

		if len(frontier) == 0 {
			// No progress this round: everything left is blocked
			return Result{
				RunnableNow: runnableNow(phases),
				Phases:      phases,
				Blocked:     blockRemaining(rest, satisfied, s),
			}
		}

		phase := Phase{
			Index:  len(phases),
			Items:  itemIDs(frontier),
			Groups: signatureGroups(frontier),
		}
		phases = append(phases, phase)

		for _, item := range frontier {
			satisfied[item.ID] = true
		}
		remaining = rest
	}

	return Result{
		RunnableNow: runnableNow(phases),
		Phases:      phases,
		Blocked:     nil,
	}
}

// dependenciesSatisfied reports whether every dependency of the item is
// completed or scheduled in an earlier phase. Items without dependencies
// are immediately eligible.
func dependenciesSatisfied(item backlog.Item, satisfied map[domain.ItemID]bool) bool {
	for _, dep := range item.DependencyIDs() {
		if !satisfied[dep] {
			return false
		}
	}
	return true
}

// blockRemaining assigns a diagnostic reason to every unschedulable item.
// A dependency on a missing id is never treated as satisfied; it blocks
// the item explicitly.
func blockRemaining(rest []backlog.Item, satisfied map[domain.ItemID]bool, s *backlog.Snapshot) []BlockedItem {
	blocked := make([]BlockedItem, 0, len(rest))
	for _, item := range rest {
		blocked = append(blocked, BlockedItem{
			ID:     item.ID,
			Reason: blockReason(item, satisfied, s),
		})
	}
	return blocked
}

func blockReason(item backlog.Item, satisfied map[domain.ItemID]bool, s *backlog.Snapshot) string {
	var unresolved []string
	var unmet []string
	selfDependent := false

	for _, dep := range item.DependencyIDs() {
		if satisfied[dep] {
			continue
		}
		if dep == item.ID {
			selfDependent = true
			continue
		}
		if !s.Contains(dep) {
			unresolved = append(unresolved, dep.String())
			continue
		}
		unmet = append(unmet, dep.String())
	}

	switch {
	case selfDependent:
		return "depends on itself"
	case len(unresolved) > 0:
		return fmt.Sprintf("unresolved dependency: %s", strings.Join(unresolved, ", "))
	case len(unmet) > 0:
		return fmt.Sprintf("circular or stalled dependency chain via %s", strings.Join(unmet, ", "))
	default:
		// Unreachable for items that failed the frontier check, kept as
		// a guard for future reason refinements
		return "not schedulable"
	}
}

// runnableNow returns the first phase's items, the ids eligible to start immediately
func runnableNow(phases []Phase) []domain.ItemID {
	if len(phases) == 0 {
		return nil
	}
	out := make([]domain.ItemID, len(phases[0].Items))
	copy(out, phases[0].Items)
	return out
}

func itemIDs(items []backlog.Item) []domain.ItemID {
	ids := make([]domain.ItemID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// signatureGroups partitions a frontier by identical prerequisite-id
// sets. Groups preserve frontier order and only groups with at least
// two members are reported; the annotation never alters the phase.
func signatureGroups(frontier []backlog.Item) [][]domain.ItemID {
	order := make([]string, 0, len(frontier))
	members := make(map[string][]domain.ItemID)

	for _, item := range frontier {
		sig := dependencySignature(item)
		if _, seen := members[sig]; !seen {
			order = append(order, sig)
		}
		members[sig] = append(members[sig], item.ID)
	}

	var groups [][]domain.ItemID
	for _, sig := range order {
		if group := members[sig]; len(group) > 1 {
			groups = append(groups, group)
		}
	}
	return groups
}

// dependencySignature builds a canonical key for an item's
// prerequisite-id set: sorted and deduplicated
func dependencySignature(item backlog.Item) string {
	deps := item.DependencyIDs()
	if len(deps) == 0 {
		return ""
	}

	unique := make(map[string]bool, len(deps))
	for _, dep := range deps {
		unique[dep.String()] = true
	}

	keys := make([]string, 0, len(unique))
	for key := range unique {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x00")
}
