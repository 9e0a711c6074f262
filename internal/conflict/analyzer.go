package conflict

import (
	"fmt"
	"sort"
	"strings"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/domain"
)

// Analyzer applies the parallel-safety rule set. The zero value is not
// usable; construct with NewAnalyzer, or set custom Patterns for
// domain-specific path conventions.
type Analyzer struct {
	Patterns Patterns
}

// NewAnalyzer creates an Analyzer with the default pattern tables
func NewAnalyzer() *Analyzer {
	return &Analyzer{Patterns: DefaultPatterns()}
}

// touch is one resolved file touch attributed to its item
type touch struct {
	item domain.ItemID
	path string
	kind backlog.ChangeKind
}

// AssessGroup evaluates whether the given items are safe to run
// concurrently. Rules are ordered and the first deny wins; malformed
// touch entries (no path) are ignored.
func (a *Analyzer) AssessGroup(items []backlog.Item) Verdict {
	if len(items) < 2 {
		return Verdict{
			Allowed:    true,
			Confidence: 100,
			Reason:     "fewer than two items, nothing to run concurrently",
		}
	}

	touches := collectTouches(items)
	if len(touches) == 0 {
		return Verdict{
			Allowed:     true,
			Confidence:  70,
			Reason:      "no touched files declared, overlap cannot be assessed",
			RiskFactors: []string{"items declare no file touch-lists"},
			Recommendations: []string{
				"declare touched files per item so conflicts can be detected before execution",
			},
		}
	}

	// Deny rules, in order; first hit wins
	if v := a.denySchemaChanges(touches); v != nil {
		return *v
	}
	if v := a.denySharedLibModifications(touches); v != nil {
		return *v
	}
	if v := a.denyConfigArtifacts(touches); v != nil {
		return *v
	}
	if v := a.denyAPISurfaceModifications(touches); v != nil {
		return *v
	}

	// Allow rules
	if v := a.allowAllNewFiles(touches); v != nil {
		return *v
	}
	if v := a.allowTestDocOnlyModifications(touches); v != nil {
		return *v
	}
	if v := a.allowIsolatedModules(touches); v != nil {
		return *v
	}

	// Default: deny, citing the paths no rule could clear
	return a.denyUnclassified(touches)
}

// collectTouches flattens the group's touch-lists, dropping entries
// without a path
func collectTouches(items []backlog.Item) []touch {
	var touches []touch
	for _, item := range items {
		for _, t := range item.Touches {
			if t.Path == "" {
				continue
			}
			touches = append(touches, touch{item: item.ID, path: t.Path, kind: t.Kind})
		}
	}
	return touches
}

// Rule 1: schema and migration changes are never safe to parallelize
func (a *Analyzer) denySchemaChanges(touches []touch) *Verdict {
	for _, t := range touches {
		if matchesAny(t.path, a.Patterns.Migration) {
			return &Verdict{
				Allowed:     false,
				Confidence:  95,
				Reason:      "schema or migration changes are never safe to parallelize",
				RiskFactors: []string{fmt.Sprintf("%s touches migration/schema path %s", t.item, t.path)},
				Recommendations: []string{
					"run schema-changing items alone, before dependent work starts",
				},
			}
		}
	}
	return nil
}

// Rule 2: modifications under shared library roots affect everyone
func (a *Analyzer) denySharedLibModifications(touches []touch) *Verdict {
	for _, t := range touches {
		if t.kind == backlog.ChangeModify && matchesAny(t.path, a.Patterns.SharedLib) {
			return &Verdict{
				Allowed:     false,
				Confidence:  90,
				Reason:      "modification of a shared library path affects all concurrent work",
				RiskFactors: []string{fmt.Sprintf("%s modifies shared path %s", t.item, t.path)},
				Recommendations: []string{
					"land shared-library changes first, then parallelize the consumers",
				},
			}
		}
	}
	return nil
}

// Rule 3: configuration artifacts are global state
func (a *Analyzer) denyConfigArtifacts(touches []touch) *Verdict {
	for _, t := range touches {
		if a.Patterns.isConfigArtifact(t.path) {
			return &Verdict{
				Allowed:     false,
				Confidence:  90,
				Reason:      "configuration artifacts are process-global and unsafe to touch concurrently",
				RiskFactors: []string{fmt.Sprintf("%s touches configuration artifact %s", t.item, t.path)},
				Recommendations: []string{
					"apply configuration changes in a dedicated sequential step",
				},
			}
		}
	}
	return nil
}

// Rule 4: public API surfaces are contracts other items build against
func (a *Analyzer) denyAPISurfaceModifications(touches []touch) *Verdict {
	for _, t := range touches {
		if t.kind == backlog.ChangeModify && matchesAny(t.path, a.Patterns.APISurface) {
			return &Verdict{
				Allowed:     false,
				Confidence:  85,
				Reason:      "modification of a public API surface can break concurrently running work",
				RiskFactors: []string{fmt.Sprintf("%s modifies API surface %s", t.item, t.path)},
				Recommendations: []string{
					"sequence API contract changes before their consumers",
				},
			}
		}
	}
	return nil
}

// Rule 5: purely additive groups cannot collide
func (a *Analyzer) allowAllNewFiles(touches []touch) *Verdict {
	for _, t := range touches {
		if t.kind != backlog.ChangeNew {
			return nil
		}
	}
	return &Verdict{
		Allowed:    true,
		Confidence: 95,
		Reason:     "every touched file is newly created, no overlap with existing code",
	}
}

// Rule 6: test/doc-only modifications are low risk but worth a heads-up
func (a *Analyzer) allowTestDocOnlyModifications(touches []touch) *Verdict {
	for _, t := range touches {
		if t.kind == backlog.ChangeModify && !matchesAny(t.path, a.Patterns.TestDoc) {
			return nil
		}
	}
	return &Verdict{
		Allowed:     true,
		Confidence:  75,
		Reason:      "all modifications are limited to test and documentation paths",
		RiskFactors: []string{"concurrent edits to shared test or doc files can still collide textually"},
		Recommendations: []string{
			"coordinate if two items edit the same test or documentation file",
		},
	}
}

// Rule 7: items confined to recognized, non-overlapping module trees
func (a *Analyzer) allowIsolatedModules(touches []touch) *Verdict {
	rootItems := make(map[string]map[domain.ItemID]bool)
	for _, t := range touches {
		root := a.Patterns.moduleRoot(t.path)
		if root == "" {
			return nil
		}
		if rootItems[root] == nil {
			rootItems[root] = make(map[domain.ItemID]bool)
		}
		rootItems[root][t.item] = true
	}

	// Two items meeting on the same path is never isolation
	if len(overlappingPaths(touches)) > 0 {
		return nil
	}

	var shared []string
	for root, owners := range rootItems {
		if len(owners) > 1 {
			shared = append(shared, root)
		}
	}
	sort.Strings(shared)

	verdict := &Verdict{
		Allowed:    true,
		Confidence: 80,
		Reason:     "all touched paths stay within recognized isolated module trees",
	}
	if len(shared) > 0 {
		verdict.Confidence = 70
		verdict.RiskFactors = []string{
			fmt.Sprintf("multiple items work inside the same module tree: %s", strings.Join(shared, ", ")),
		}
		verdict.Recommendations = []string{
			"review the shared module trees for semantic overlap before starting",
		}
	}
	return verdict
}

// Rule 8: nothing cleared the group, deny and cite the paths
func (a *Analyzer) denyUnclassified(touches []touch) Verdict {
	offending := overlappingPaths(touches)
	if len(offending) == 0 {
		for _, t := range touches {
			if a.Patterns.moduleRoot(t.path) == "" {
				offending = append(offending, t.path)
			}
		}
	}
	offending = dedupe(offending)
	sort.Strings(offending)

	risks := make([]string, 0, len(offending))
	for _, p := range offending {
		risks = append(risks, fmt.Sprintf("cannot establish isolation for %s", p))
	}

	return Verdict{
		Allowed:     false,
		Confidence:  70,
		Reason:      "touched files cannot be proven independent, run sequentially",
		RiskFactors: risks,
		Recommendations: []string{
			"split the group or execute its items one at a time",
		},
	}
}

// overlappingPaths returns paths touched by more than one item where at
// least one touch is a modification
func overlappingPaths(touches []touch) []string {
	itemsByPath := make(map[string]map[domain.ItemID]bool)
	modifiedPaths := make(map[string]bool)
	for _, t := range touches {
		if itemsByPath[t.path] == nil {
			itemsByPath[t.path] = make(map[domain.ItemID]bool)
		}
		itemsByPath[t.path][t.item] = true
		if t.kind == backlog.ChangeModify {
			modifiedPaths[t.path] = true
		}
	}

	var out []string
	for path, owners := range itemsByPath {
		if len(owners) > 1 && modifiedPaths[path] {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// AssessGroup evaluates a concurrent group with the default analyzer
func AssessGroup(items []backlog.Item) Verdict {
	return NewAnalyzer().AssessGroup(items)
}
