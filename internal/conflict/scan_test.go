package conflict

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/domain"
)

func TestScanBacklogTwoModifiersFileConflict(t *testing.T) {
	items := []backlog.Item{
		{ID: "a", Touches: []backlog.FileTouch{{Path: "src/app.go", Kind: backlog.ChangeModify}}},
		{ID: "b", Touches: []backlog.FileTouch{{Path: "src/app.go", Kind: backlog.ChangeModify}}},
	}

	records := ScanBacklog(items)

	require.Len(t, records, 1)
	assert.Equal(t, TypeFile, records[0].Type)
	assert.Equal(t, "src/app.go", records[0].FilePath)
	assert.Equal(t, SeverityHigh, records[0].Severity)
	assert.Equal(t, []domain.ItemID{"a", "b"}, records[0].Items)
}

func TestScanBacklogSingleToucherNoConflict(t *testing.T) {
	items := []backlog.Item{
		{ID: "a", Touches: []backlog.FileTouch{{Path: "src/app.go", Kind: backlog.ChangeModify}}},
		{ID: "b", Touches: []backlog.FileTouch{{Path: "src/other.go", Kind: backlog.ChangeModify}}},
	}

	assert.Empty(t, ScanBacklog(items))
}

func TestScanBacklogDependencyConflictModifierLeads(t *testing.T) {
	// b modifies the path the others only reference; b must be sequenced first
	items := []backlog.Item{
		{ID: "a", Touches: []backlog.FileTouch{{Path: "lib/auth.go", Kind: backlog.ChangeOther}}},
		{ID: "b", Touches: []backlog.FileTouch{{Path: "lib/auth.go", Kind: backlog.ChangeModify}}},
		{ID: "c", Touches: []backlog.FileTouch{{Path: "lib/auth.go", Kind: backlog.ChangeNew}}},
	}

	records := ScanBacklog(items)

	require.Len(t, records, 1)
	assert.Equal(t, TypeDependency, records[0].Type)
	assert.Equal(t, SeverityMedium, records[0].Severity)
	assert.Equal(t, []domain.ItemID{"b", "a", "c"}, records[0].Items)
	assert.Contains(t, records[0].Recommendation, "b")
}

func TestScanBacklogNewOnlyOverlapIsQuiet(t *testing.T) {
	// Two items both creating the same path is suspicious input but not a
	// modification conflict
	items := []backlog.Item{
		{ID: "a", Touches: []backlog.FileTouch{{Path: "gen/out.go", Kind: backlog.ChangeNew}}},
		{ID: "b", Touches: []backlog.FileTouch{{Path: "gen/out.go", Kind: backlog.ChangeNew}}},
	}

	assert.Empty(t, ScanBacklog(items))
}

func TestScanBacklogRecordsSortedByPath(t *testing.T) {
	items := []backlog.Item{
		{ID: "a", Touches: []backlog.FileTouch{
			{Path: "z/last.go", Kind: backlog.ChangeModify},
			{Path: "a/first.go", Kind: backlog.ChangeModify},
		}},
		{ID: "b", Touches: []backlog.FileTouch{
			{Path: "z/last.go", Kind: backlog.ChangeModify},
			{Path: "a/first.go", Kind: backlog.ChangeModify},
		}},
	}

	records := ScanBacklog(items)

	require.Len(t, records, 2)
	assert.Equal(t, "a/first.go", records[0].FilePath)
	assert.Equal(t, "z/last.go", records[1].FilePath)
}

func TestScanBacklogSkipsEmptyPaths(t *testing.T) {
	items := []backlog.Item{
		{ID: "a", Touches: []backlog.FileTouch{{Path: "", Kind: backlog.ChangeModify}}},
		{ID: "b", Touches: []backlog.FileTouch{{Path: "", Kind: backlog.ChangeModify}}},
	}

	assert.Empty(t, ScanBacklog(items))
}

func TestScanBacklogDeterminism(t *testing.T) {
	items := []backlog.Item{
		{ID: "a", Touches: []backlog.FileTouch{
			{Path: "p/one.go", Kind: backlog.ChangeModify},
			{Path: "p/two.go", Kind: backlog.ChangeModify},
		}},
		{ID: "b", Touches: []backlog.FileTouch{
			{Path: "p/two.go", Kind: backlog.ChangeModify},
			{Path: "p/one.go", Kind: backlog.ChangeOther},
		}},
	}

	first := ScanBacklog(items)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScanBacklog(items))
	}
}

func TestNewScanReport(t *testing.T) {
	snap, err := backlog.NewSnapshot([]backlog.Item{
		{ID: "a", Touches: []backlog.FileTouch{{Path: "src/app.go", Kind: backlog.ChangeModify}}},
		{ID: "b", Touches: []backlog.FileTouch{{Path: "src/app.go", Kind: backlog.ChangeModify}}},
	})
	require.NoError(t, err)

	report, err := NewScanReport(snap)
	require.NoError(t, err)

	_, err = uuid.Parse(report.ReportID)
	assert.NoError(t, err)
	assert.Len(t, report.SnapshotDigest, 64)
	assert.False(t, report.GeneratedAt.IsZero())
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, TypeFile, report.Conflicts[0].Type)

	other, err := NewScanReport(snap)
	require.NoError(t, err)
	assert.NotEqual(t, report.ReportID, other.ReportID)
	assert.Equal(t, report.SnapshotDigest, other.SnapshotDigest)
	assert.Equal(t, report.Conflicts, other.Conflicts)
}
