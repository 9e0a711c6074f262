package backlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/phaseline/internal/domain"
	"github.com/felixgeelhaar/phaseline/internal/errors"
)

const sampleYAML = `
items:
  - id: task-1
    title: Add login endpoint
    status: done
    touches:
      - path: internal/auth/login.go
        kind: new
  - id: task-2
    status: todo
    depends_on:
      - task-1
      - id: task-1
    worker: backend
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "backlog.yaml", sampleYAML)

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Len())

	first, ok := snap.Item("task-1")
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, first.Status)
	require.Len(t, first.Touches, 1)
	assert.Equal(t, ChangeNew, first.Touches[0].Kind)

	second, ok := snap.Item("task-2")
	require.True(t, ok)
	assert.Equal(t, StatusPending, second.Status)
	assert.Equal(t, []domain.ItemID{"task-1", "task-1"}, second.DependencyIDs())
	assert.Equal(t, "backend", second.Worker)
}

func TestLoadJSON(t *testing.T) {
	content := `{
  "items": [
    {"id": "task-1", "status": "done"},
    {"id": "task-2", "depends_on": ["task-1", {"task_id": "task-1"}]}
  ]
}`
	path := writeTemp(t, "backlog.json", content)

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Len())
}

func TestLoadJSONRejectsSchemaViolations(t *testing.T) {
	content := `{"items": [{"title": "no id here"}]}`
	path := writeTemp(t, "backlog.json", content)

	_, err := Load(path)
	require.Error(t, err)

	var perr *errors.PhaselineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.ErrCodeBacklogSchemaInvalid, perr.Code)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var perr *errors.PhaselineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.ErrCodeBacklogNotFound, perr.Code)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeTemp(t, "backlog.toml", "items = []")

	_, err := Load(path)
	require.Error(t, err)

	var perr *errors.PhaselineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.ErrCodeBacklogFormat, perr.Code)
}

func TestSaveAndReload(t *testing.T) {
	snap, err := NewSnapshot([]Item{
		{ID: "task-1", Status: StatusCompleted},
		{ID: "task-2", DependsOn: []Dependency{Dep("task-1")}, Touches: []FileTouch{{Path: "a.go", Kind: ChangeModify}}},
	})
	require.NoError(t, err)

	for _, name := range []string{"out.yaml", "out.json"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(snap, path))

		reloaded, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, snap.Len(), reloaded.Len(), name)

		got, ok := reloaded.Item("task-2")
		require.True(t, ok, name)
		assert.Equal(t, []domain.ItemID{"task-1"}, got.DependencyIDs(), name)
	}
}

func TestValidateSchemaAcceptsDescriptorForms(t *testing.T) {
	valid := `{"items": [{"id": "a", "depends_on": ["b", {"id": "c"}, {"item_id": "d"}]}]}`
	assert.NoError(t, ValidateSchema([]byte(valid)))

	invalid := `{"items": [{"id": "a", "depends_on": [{"nickname": "c"}]}]}`
	assert.Error(t, ValidateSchema([]byte(invalid)))
}
