package ux

import (
	"os"
	"path/filepath"
)

// PathDefaults resolves the default file locations the CLI falls back
// to when no --in flag is given
type PathDefaults struct {
	PhaselineDir string
}

// NewPathDefaults creates PathDefaults rooted at .phaseline
func NewPathDefaults() *PathDefaults {
	return &PathDefaults{
		PhaselineDir: ".phaseline",
	}
}

// BacklogFile returns the backlog snapshot path. Prefers an existing
// YAML file, falls back to JSON, and returns the YAML path for
// creation when neither exists.
func (pd *PathDefaults) BacklogFile() string {
	yamlPath := filepath.Join(pd.PhaselineDir, "backlog.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	jsonPath := filepath.Join(pd.PhaselineDir, "backlog.json")
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath
	}
	return yamlPath
}

// RulesFile returns the classifier rules override path
func (pd *PathDefaults) RulesFile() string {
	return filepath.Join(pd.PhaselineDir, "rules.yaml")
}

// HasRulesFile reports whether a classifier rules override exists
func (pd *PathDefaults) HasRulesFile() bool {
	_, err := os.Stat(pd.RulesFile())
	return err == nil
}
