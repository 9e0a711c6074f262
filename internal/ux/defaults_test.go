package ux

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chtemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestBacklogFilePrefersYAML(t *testing.T) {
	chtemp(t)
	require.NoError(t, os.MkdirAll(".phaseline", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".phaseline", "backlog.yaml"), []byte("items: []\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(".phaseline", "backlog.json"), []byte(`{"items":[]}`), 0644))

	pd := NewPathDefaults()
	assert.Equal(t, filepath.Join(".phaseline", "backlog.yaml"), pd.BacklogFile())
}

func TestBacklogFileFallsBackToJSON(t *testing.T) {
	chtemp(t)
	require.NoError(t, os.MkdirAll(".phaseline", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".phaseline", "backlog.json"), []byte(`{"items":[]}`), 0644))

	pd := NewPathDefaults()
	assert.Equal(t, filepath.Join(".phaseline", "backlog.json"), pd.BacklogFile())
}

func TestBacklogFileDefaultWhenMissing(t *testing.T) {
	chtemp(t)

	pd := NewPathDefaults()
	assert.Equal(t, filepath.Join(".phaseline", "backlog.yaml"), pd.BacklogFile())
}

func TestRulesFile(t *testing.T) {
	chtemp(t)

	pd := NewPathDefaults()
	assert.Equal(t, filepath.Join(".phaseline", "rules.yaml"), pd.RulesFile())
	assert.False(t, pd.HasRulesFile())

	require.NoError(t, os.MkdirAll(".phaseline", 0755))
	require.NoError(t, os.WriteFile(pd.RulesFile(), []byte("frontend: [widget]\n"), 0644))
	assert.True(t, pd.HasRulesFile())
}
