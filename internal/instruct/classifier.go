// Package instruct renders scheduler and analyzer output as plain
// instructional text for whatever external agent executes the work,
// and resolves each item's worker assignment on the way.
package instruct

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/domain"
	"github.com/felixgeelhaar/phaseline/internal/errors"
)

// Classifier infers a work item's category from naming conventions.
// The keyword table is a convenience default, not an invariant;
// callers with their own conventions replace it wholesale or load one
// from a rules file.
type Classifier struct {
	// Keywords maps a lowercase keyword to the category it suggests.
	// Longer keywords win over shorter ones when several match;
	// equal-length ties break lexicographically.
	Keywords map[string]domain.Category
}

// DefaultClassifier returns a classifier seeded with common naming
// conventions for frontend, backend, database, test, doc, and infra work
func DefaultClassifier() *Classifier {
	return &Classifier{Keywords: map[string]domain.Category{
		"ui":         domain.CategoryFrontend,
		"frontend":   domain.CategoryFrontend,
		"component":  domain.CategoryFrontend,
		"page":       domain.CategoryFrontend,
		"view":       domain.CategoryFrontend,
		"css":        domain.CategoryFrontend,
		"style":      domain.CategoryFrontend,
		"api":        domain.CategoryBackend,
		"backend":    domain.CategoryBackend,
		"server":     domain.CategoryBackend,
		"endpoint":   domain.CategoryBackend,
		"service":    domain.CategoryBackend,
		"handler":    domain.CategoryBackend,
		"db":         domain.CategoryDatabase,
		"database":   domain.CategoryDatabase,
		"migration":  domain.CategoryDatabase,
		"schema":     domain.CategoryDatabase,
		"sql":        domain.CategoryDatabase,
		"test":       domain.CategoryTesting,
		"spec":       domain.CategoryTesting,
		"e2e":        domain.CategoryTesting,
		"coverage":   domain.CategoryTesting,
		"doc":        domain.CategoryDocs,
		"docs":       domain.CategoryDocs,
		"readme":     domain.CategoryDocs,
		"changelog":  domain.CategoryDocs,
		"deploy":     domain.CategoryInfra,
		"docker":     domain.CategoryInfra,
		"ci":         domain.CategoryInfra,
		"pipeline":   domain.CategoryInfra,
		"infra":      domain.CategoryInfra,
		"terraform":  domain.CategoryInfra,
		"kubernetes": domain.CategoryInfra,
	}}
}

// Classify resolves the item's category from its id, title, and
// touched paths. The longest matching keyword wins; equal-length ties
// break lexicographically so identical items always classify the
// same. Falls back to the general category when no keyword matches.
func (c *Classifier) Classify(item backlog.Item) domain.Category {
	haystack := strings.ToLower(item.ID.String() + " " + item.Title)
	for _, p := range item.TouchedPaths() {
		haystack += " " + strings.ToLower(p)
	}

	for _, keyword := range c.orderedKeywords() {
		if containsKeyword(haystack, keyword) {
			return c.Keywords[keyword]
		}
	}
	return domain.CategoryGeneral
}

// orderedKeywords returns the keyword table's keys longest first,
// then lexicographic
func (c *Classifier) orderedKeywords() []string {
	keywords := make([]string, 0, len(c.Keywords))
	for keyword := range c.Keywords {
		keywords = append(keywords, keyword)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if len(keywords[i]) != len(keywords[j]) {
			return len(keywords[i]) > len(keywords[j])
		}
		return keywords[i] < keywords[j]
	})
	return keywords
}

// Assignment resolves the worker an item is directed to: the declared
// worker when present, otherwise the classified category
func (c *Classifier) Assignment(item backlog.Item) string {
	if item.Worker != "" {
		return item.Worker
	}
	return c.Classify(item).String()
}

// containsKeyword matches on word boundaries so "ci" does not fire
// inside "service"
func containsKeyword(haystack, keyword string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], keyword)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(keyword)
		if boundary(haystack, start-1) && boundary(haystack, end) {
			return true
		}
		idx = start + 1
	}
}

func boundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	ch := s[i]
	if ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9' {
		return false
	}
	return true
}

// rulesFile is the on-disk classifier override: category name mapped
// to the keywords that suggest it.
//
//	frontend: [ui, widget]
//	backend:  [grpc, queue]
type rulesFile map[string][]string

// LoadRules reads a YAML rules file and builds a classifier from it.
// The file replaces the default table entirely.
func LoadRules(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeInstructRulesNotFound,
				"classifier rules file not found: "+path).
				WithSuggestion("Check the --rules path or omit it to use the built-in keyword table")
		}
		return nil, errors.NewInstructRulesError(path, err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewInstructRulesError(path, err)
	}

	keywords := make(map[string]domain.Category)
	categories := make([]string, 0, len(file))
	for category := range file {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, name := range categories {
		category, err := domain.NewCategory(name)
		if err != nil {
			return nil, errors.NewInstructRulesError(path, err)
		}
		for _, keyword := range file[name] {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword == "" {
				continue
			}
			keywords[keyword] = category
		}
	}

	return &Classifier{Keywords: keywords}, nil
}
