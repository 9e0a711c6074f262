// Package backlog defines the work-item snapshot that the scheduler,
// conflict analyzer, and plan formatter consume. A snapshot is an
// immutable view of the backlog for one planning pass: the external
// store owns the items, phaseline only reads them.
package backlog

import (
	"github.com/felixgeelhaar/phaseline/internal/domain"
	"github.com/felixgeelhaar/phaseline/internal/errors"
)

// Item represents a single unit of work in the backlog
type Item struct {
	ID        domain.ItemID `yaml:"id" json:"id"`
	Title     string        `yaml:"title,omitempty" json:"title,omitempty"`
	Status    Status        `yaml:"status,omitempty" json:"status,omitempty"`
	DependsOn []Dependency  `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
	Touches   []FileTouch   `yaml:"touches,omitempty" json:"touches,omitempty"`
	// Worker is an optional explicit worker/category assignment.
	// When empty, the instruct classifier infers one.
	Worker string `yaml:"worker,omitempty" json:"worker,omitempty"`
}

// Completed reports whether the item's work is finished
func (i Item) Completed() bool {
	return i.Status == StatusCompleted
}

// Outstanding reports whether the item still represents schedulable work
func (i Item) Outstanding() bool {
	return !i.Completed()
}

// DependencyIDs returns the normalized dependency target ids in declaration order
func (i Item) DependencyIDs() []domain.ItemID {
	if len(i.DependsOn) == 0 {
		return nil
	}
	ids := make([]domain.ItemID, 0, len(i.DependsOn))
	for _, dep := range i.DependsOn {
		ids = append(ids, dep.ID)
	}
	return ids
}

// TouchedPaths returns the paths the item touches, skipping malformed
// entries with an empty path
func (i Item) TouchedPaths() []string {
	if len(i.Touches) == 0 {
		return nil
	}
	paths := make([]string, 0, len(i.Touches))
	for _, t := range i.Touches {
		if t.Path == "" {
			continue
		}
		paths = append(paths, t.Path)
	}
	return paths
}

// Snapshot is an immutable list of work items for one planning pass.
// Construct it with NewSnapshot, which copies the input and indexes it.
type Snapshot struct {
	items []Item
	byID  map[domain.ItemID]int
}

// NewSnapshot builds a snapshot from a list of items.
// The input slice is copied; mutating it afterwards does not affect
// the snapshot. Items with duplicate or invalid ids are rejected.
func NewSnapshot(items []Item) (*Snapshot, error) {
	s := &Snapshot{
		items: make([]Item, len(items)),
		byID:  make(map[domain.ItemID]int, len(items)),
	}
	copy(s.items, items)

	for idx := range s.items {
		if s.items[idx].Status == "" {
			s.items[idx].Status = StatusPending
		}
		item := s.items[idx]
		if err := item.ID.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeItemIDInvalid, "invalid item id", err)
		}
		if _, exists := s.byID[item.ID]; exists {
			return nil, errors.NewItemDuplicateError(item.ID.String())
		}
		for _, dep := range item.DependsOn {
			if dep.ID == "" {
				return nil, errors.NewItemDepMalformedError(item.ID.String(), "empty dependency id")
			}
		}
		s.byID[item.ID] = idx
	}

	return s, nil
}

// Items returns a copy of the snapshot's items in input order
func (s *Snapshot) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Item looks up an item by id
func (s *Snapshot) Item(id domain.ItemID) (Item, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Item{}, false
	}
	return s.items[idx], true
}

// Contains reports whether an item with the given id exists
func (s *Snapshot) Contains(id domain.ItemID) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of items in the snapshot
func (s *Snapshot) Len() int {
	return len(s.items)
}

// Outstanding returns the items that are not yet completed, in input order
func (s *Snapshot) Outstanding() []Item {
	var out []Item
	for _, item := range s.items {
		if item.Outstanding() {
			out = append(out, item)
		}
	}
	return out
}

// Completed returns the ids of items already completed
func (s *Snapshot) Completed() map[domain.ItemID]bool {
	done := make(map[domain.ItemID]bool)
	for _, item := range s.items {
		if item.Completed() {
			done[item.ID] = true
		}
	}
	return done
}
