package backlog

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// ChangeKind classifies how an item touches a file
type ChangeKind string

const (
	// ChangeNew is a file the item creates (aliases: add, added, create, created)
	ChangeNew ChangeKind = "NEW"
	// ChangeModify is a file the item edits (aliases: edit, update, change, modified)
	ChangeModify ChangeKind = "MODIFY"
	// ChangeOther covers reads, renames, and anything unclassified
	ChangeOther ChangeKind = "OTHER"
)

// changeKindAliases maps accepted spellings to their canonical kind
var changeKindAliases = map[string]ChangeKind{
	"new":      ChangeNew,
	"add":      ChangeNew,
	"added":    ChangeNew,
	"create":   ChangeNew,
	"created":  ChangeNew,
	"modify":   ChangeModify,
	"modified": ChangeModify,
	"edit":     ChangeModify,
	"edited":   ChangeModify,
	"update":   ChangeModify,
	"updated":  ChangeModify,
	"change":   ChangeModify,
	"changed":  ChangeModify,
}

// ParseChangeKind resolves a raw change kind to its canonical value.
// Anything unrecognized is OTHER.
func ParseChangeKind(raw string) ChangeKind {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if kind, ok := changeKindAliases[normalized]; ok {
		return kind
	}
	return ChangeOther
}

// String returns the canonical string representation
func (k ChangeKind) String() string {
	return string(k)
}

// UnmarshalYAML resolves change-kind aliases while decoding YAML
func (k *ChangeKind) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*k = ParseChangeKind(raw)
	return nil
}

// UnmarshalJSON resolves change-kind aliases while decoding JSON
func (k *ChangeKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*k = ParseChangeKind(raw)
	return nil
}

// FileTouch declares one file or resource an item touches
type FileTouch struct {
	Path string     `yaml:"path" json:"path"`
	Kind ChangeKind `yaml:"kind,omitempty" json:"kind,omitempty"`
}

// IsModification reports whether the touch writes to an existing file
func (t FileTouch) IsModification() bool {
	return t.Kind == ChangeModify
}
