package domain

import "fmt"

// Category represents the worker category a work item is routed to.
// This is a value object that enforces valid category values.
type Category string

// Valid worker categories
const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDatabase Category = "database"
	CategoryTesting  Category = "testing"
	CategoryDocs     Category = "docs"
	CategoryInfra    Category = "infra"
	// CategoryGeneral is the fixed fallback when no keyword rule matches
	CategoryGeneral Category = "general"
)

// AllCategories lists every valid category, fallback last
func AllCategories() []Category {
	return []Category{
		CategoryFrontend,
		CategoryBackend,
		CategoryDatabase,
		CategoryTesting,
		CategoryDocs,
		CategoryInfra,
		CategoryGeneral,
	}
}

// NewCategory creates a new Category value object with validation
func NewCategory(value string) (Category, error) {
	c := Category(value)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks if the category is valid
func (c Category) Validate() error {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryDatabase,
		CategoryTesting, CategoryDocs, CategoryInfra, CategoryGeneral:
		return nil
	default:
		return fmt.Errorf("invalid category %q: must be one of frontend, backend, database, testing, docs, infra, general", string(c))
	}
}

// String returns the string representation
func (c Category) String() string {
	return string(c)
}
