package backlog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/phaseline/internal/domain"
)

// Dependency is a normalized dependency descriptor.
// Source data spells dependencies either as a plain id string or as a
// mapping carrying the id under one of several field names; both forms
// decode to the canonical target id.
type Dependency struct {
	ID domain.ItemID
}

// dependencyIDKeys are the accepted field names for the target id in
// mapping-form descriptors, in lookup order
var dependencyIDKeys = []string{"id", "item_id", "task_id", "depends_on"}

// Dep is a convenience constructor for a dependency on the given id
func Dep(id string) Dependency {
	return Dependency{ID: domain.ItemID(id)}
}

// UnmarshalYAML decodes either a scalar id or a mapping with an id-like key
func (d *Dependency) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		d.ID = domain.ItemID(raw)
		return nil

	case yaml.MappingNode:
		var fields map[string]string
		if err := value.Decode(&fields); err != nil {
			return fmt.Errorf("dependency mapping: %w", err)
		}
		for _, key := range dependencyIDKeys {
			if id, ok := fields[key]; ok && id != "" {
				d.ID = domain.ItemID(id)
				return nil
			}
		}
		return fmt.Errorf("dependency mapping has no id field (expected one of id, item_id, task_id, depends_on)")

	default:
		return fmt.Errorf("dependency must be a string or a mapping, got %v", value.Kind)
	}
}

// MarshalYAML emits the canonical scalar form
func (d Dependency) MarshalYAML() (interface{}, error) {
	return d.ID.String(), nil
}

// UnmarshalJSON decodes either a string id or an object with an id-like key
func (d *Dependency) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		d.ID = domain.ItemID(raw)
		return nil
	}

	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("dependency must be a string or an object: %w", err)
	}
	for _, key := range dependencyIDKeys {
		if id, ok := fields[key]; ok && id != "" {
			d.ID = domain.ItemID(id)
			return nil
		}
	}
	return fmt.Errorf("dependency object has no id field (expected one of id, item_id, task_id, depends_on)")
}

// MarshalJSON emits the canonical string form
func (d Dependency) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ID.String())
}
