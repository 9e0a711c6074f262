package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// ItemID represents a unique identifier for a work item.
// Ids are opaque: callers choose the convention (task-001, AUTH-42, ...),
// phaseline only requires that they are non-empty, free of whitespace,
// and reasonably short.
type ItemID string

// maxItemIDLength is the maximum allowed length for an item ID
const maxItemIDLength = 200

// NewItemID creates a new ItemID value object with validation
func NewItemID(value string) (ItemID, error) {
	id := ItemID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks if the item ID is valid
func (i ItemID) Validate() error {
	s := string(i)

	if s == "" {
		return fmt.Errorf("item ID cannot be empty")
	}

	if len(s) > maxItemIDLength {
		return fmt.Errorf("item ID %q exceeds maximum length of %d characters", s, maxItemIDLength)
	}

	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return fmt.Errorf("item ID %q cannot contain whitespace", s)
	}

	return nil
}

// String returns the string representation
func (i ItemID) String() string {
	return string(i)
}

// Equals checks if this item ID equals another
func (i ItemID) Equals(other ItemID) bool {
	return i == other
}
