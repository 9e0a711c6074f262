package backlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSnapshot(t *testing.T, items []Item) *Snapshot {
	t.Helper()
	snap, err := NewSnapshot(items)
	require.NoError(t, err)
	return snap
}

func TestDigestIsDeterministic(t *testing.T) {
	items := []Item{
		{ID: "task-2", DependsOn: []Dependency{Dep("task-1")}},
		{ID: "task-1", Status: StatusCompleted, Touches: []FileTouch{{Path: "a.go", Kind: ChangeNew}}},
	}

	first, err := Digest(mustSnapshot(t, items))
	require.NoError(t, err)
	second, err := Digest(mustSnapshot(t, items))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // blake3 hex
}

func TestDigestIgnoresItemOrder(t *testing.T) {
	forward := mustSnapshot(t, []Item{{ID: "a"}, {ID: "b"}})
	reversed := mustSnapshot(t, []Item{{ID: "b"}, {ID: "a"}})

	d1, err := Digest(forward)
	require.NoError(t, err)
	d2, err := Digest(reversed)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestDigestSeesStatusChanges(t *testing.T) {
	pending := mustSnapshot(t, []Item{{ID: "a", Status: StatusPending}})
	done := mustSnapshot(t, []Item{{ID: "a", Status: StatusCompleted}})

	d1, err := Digest(pending)
	require.NoError(t, err)
	d2, err := Digest(done)
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestDigestSkipsMalformedTouches(t *testing.T) {
	with := mustSnapshot(t, []Item{{ID: "a", Touches: []FileTouch{{Path: "", Kind: ChangeNew}}}})
	without := mustSnapshot(t, []Item{{ID: "a"}})

	d1, err := Digest(with)
	require.NoError(t, err)
	d2, err := Digest(without)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}
