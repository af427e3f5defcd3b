package localstore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDeviceIdentityIsStable(t *testing.T) {
	s := openTestStore(t)

	first, err := s.DeviceIdentity()
	require.NoError(t, err)
	require.NotEmpty(t, first.DeviceID)

	second, err := s.DeviceIdentity()
	require.NoError(t, err)
	assert.Equal(t, first.DeviceID, second.DeviceID)
}

func TestSetDisplayNameKeepsDeviceID(t *testing.T) {
	s := openTestStore(t)

	id, err := s.DeviceIdentity()
	require.NoError(t, err)

	renamed, err := s.SetDisplayName("Sam R.")
	require.NoError(t, err)
	assert.Equal(t, id.DeviceID, renamed.DeviceID)
	assert.Equal(t, "Sam R.", renamed.DisplayName)

	reread, err := s.DeviceIdentity()
	require.NoError(t, err)
	assert.Equal(t, "Sam R.", reread.DisplayName)
}

func TestReportRoundTripAndIndex(t *testing.T) {
	s := openTestStore(t)
	projectID := uuid.New()

	rep := &entity.Report{
		ID:          uuid.New(),
		ProjectID:   projectID,
		ReportDate:  "2026-03-14",
		Status:      constants.StatusDraft,
		CaptureMode: constants.CaptureFreeform,
		UserEdits:   map[string]any{"summary": "poured footings"},
		FieldNotes:  []entity.Entry{{LocalID: "e1", Text: "pour complete"}},
	}
	require.NoError(t, s.SaveReport(rep))

	got, err := s.GetReport(rep.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rep.ID, got.ID)
	assert.Equal(t, "poured footings", got.UserEdits["summary"])
	require.Len(t, got.FieldNotes, 1)
	assert.Equal(t, "e1", got.FieldNotes[0].LocalID)

	refs, err := s.ListCurrentReports(projectID)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, rep.ID, refs[0].ReportID)
	assert.Equal(t, constants.StatusDraft, refs[0].Status)

	ref, err := s.GetCurrentReport(projectID, "2026-03-14")
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, rep.ID, ref.ReportID)
}

func TestGetReportMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	got, err := s.GetReport(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteReportRemovesIndexRow(t *testing.T) {
	s := openTestStore(t)
	rep := &entity.Report{ID: uuid.New(), ProjectID: uuid.New(), ReportDate: "2026-03-14"}
	require.NoError(t, s.SaveReport(rep))
	require.NoError(t, s.DeleteReport(rep))

	got, err := s.GetReport(rep.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ref, err := s.GetCurrentReport(rep.ProjectID, rep.ReportDate)
	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestListCurrentReportsScopedToProject(t *testing.T) {
	s := openTestStore(t)
	a, b := uuid.New(), uuid.New()
	require.NoError(t, s.SaveReport(&entity.Report{ID: uuid.New(), ProjectID: a, ReportDate: "2026-03-13"}))
	require.NoError(t, s.SaveReport(&entity.Report{ID: uuid.New(), ProjectID: a, ReportDate: "2026-03-14"}))
	require.NoError(t, s.SaveReport(&entity.Report{ID: uuid.New(), ProjectID: b, ReportDate: "2026-03-14"}))

	refs, err := s.ListCurrentReports(a)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	// Key order is date order within the project prefix.
	assert.Equal(t, "2026-03-13", refs[0].ReportDate)
	assert.Equal(t, "2026-03-14", refs[1].ReportDate)
}

func TestQueueFIFOAndRemove(t *testing.T) {
	s := openTestStore(t)

	op1, err := s.Enqueue(constants.OpEntryBackup, entity.EntryBackupPayload{ReportID: uuid.New().String()})
	require.NoError(t, err)
	op2, err := s.Enqueue(constants.OpReportSync, entity.ReportSyncPayload{ReportID: uuid.New().String()})
	require.NoError(t, err)

	ops, err := s.PendingOps()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, op1.ID, ops[0].ID)
	assert.Equal(t, op2.ID, ops[1].ID)

	require.NoError(t, s.RemoveOp(op1.ID))
	ops, err = s.PendingOps()
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, op2.ID, ops[0].ID)

	// Removing an already-gone id is a no-op.
	require.NoError(t, s.RemoveOp(op1.ID))
}

func TestQueueBumpRetry(t *testing.T) {
	s := openTestStore(t)
	op, err := s.Enqueue(constants.OpReportSync, entity.ReportSyncPayload{ReportID: uuid.New().String()})
	require.NoError(t, err)

	n, err := s.BumpRetry(op.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s.BumpRetry(op.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ops, err := s.PendingOps()
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, 2, ops[0].Retries)
}

func TestProjectsBucketClear(t *testing.T) {
	s := openTestStore(t)
	projects := []entity.Project{
		{ID: uuid.New(), Name: "Riverside Tower", Status: "active"},
		{ID: uuid.New(), Name: "Harbor Bridge Rehab", Status: "active"},
	}
	require.NoError(t, s.SaveProjects(projects))

	got, err := s.ListProjects()
	require.NoError(t, err)
	assert.Len(t, got, 2)

	require.NoError(t, s.ClearProjects())
	got, err = s.ListProjects()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestArchivesBucketScopedClear(t *testing.T) {
	s := openTestStore(t)
	a, b := uuid.New(), uuid.New()
	require.NoError(t, s.SaveArchives(a, []entity.Report{{ID: uuid.New(), ProjectID: a, ReportDate: "2026-03-01", Status: constants.StatusSubmitted}}))
	require.NoError(t, s.SaveArchives(b, []entity.Report{{ID: uuid.New(), ProjectID: b, ReportDate: "2026-03-02", Status: constants.StatusSubmitted}}))

	require.NoError(t, s.ClearArchives(a))

	got, err := s.ListArchives(a)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.ListArchives(b)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
