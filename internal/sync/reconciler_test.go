package sync

import (
	"context"
	"fmt"
	gosync "sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/entity"
	"github.com/fieldlog/fieldlog/internal/localstore"
)

var (
	errConn     = fmt.Errorf("dial remote: %w", common.ErrOffline)
	errRejected = fmt.Errorf("constraint violation: %w", common.ErrRemoteRejected)
)

type fakeReports struct {
	mu        gosync.Mutex
	upserts   []entity.Report
	upsertErr error
	byID      map[uuid.UUID]*entity.Report
	getCalls  int
	submitted []entity.Report
	listErr   error
}

func (f *fakeReports) UpsertReport(_ context.Context, rep *entity.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, *rep)
	return nil
}

func (f *fakeReports) GetByID(_ context.Context, id uuid.UUID) (*entity.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	return f.byID[id], nil
}

func (f *fakeReports) GetByProjectDate(context.Context, uuid.UUID, string) (*entity.Report, error) {
	return nil, nil
}

func (f *fakeReports) ListSubmitted(context.Context, uuid.UUID) ([]entity.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.submitted, nil
}

type fakeEntries struct {
	mu        gosync.Mutex
	upserts   []entity.Entry
	deletes   []string
	upsertErr error
	remoteID  string
}

func (f *fakeEntries) UpsertEntry(_ context.Context, _ uuid.UUID, e entity.Entry) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return "", f.upsertErr
	}
	f.upserts = append(f.upserts, e)
	if f.remoteID != "" {
		return f.remoteID, nil
	}
	return "remote-" + e.LocalID, nil
}

func (f *fakeEntries) DeleteEntry(_ context.Context, _ uuid.UUID, localEntryID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.deletes = append(f.deletes, localEntryID)
	return nil
}

type fakeRaw struct {
	mu       gosync.Mutex
	replaces []map[string]any
}

func (f *fakeRaw) Replace(_ context.Context, _ uuid.UUID, _ string, payload map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replaces = append(f.replaces, payload)
	return nil
}

type fakePhotos struct {
	mu      gosync.Mutex
	upserts []entity.Photo
}

func (f *fakePhotos) UpsertPhoto(_ context.Context, _ uuid.UUID, p entity.Photo) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, p)
	return "remote-" + p.LocalID, nil
}

type fakeProjects struct {
	projects []entity.Project
	err      error
	calls    int
}

func (f *fakeProjects) ListProjects(context.Context) ([]entity.Project, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

type testEnv struct {
	local    *localstore.Store
	reports  *fakeReports
	entries  *fakeEntries
	raw      *fakeRaw
	projects *fakeProjects
	photos   *fakePhotos
	net      *Connectivity
	recon    *Reconciler
}

// newTestEnv builds a reconciler over an in-memory store. Connectivity starts
// offline so nothing drains until the test says so; tests call Drain directly
// for determinism.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	local, err := localstore.Open(localstore.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	env := &testEnv{
		local:    local,
		reports:  &fakeReports{byID: map[uuid.UUID]*entity.Report{}},
		entries:  &fakeEntries{},
		raw:      &fakeRaw{},
		projects: &fakeProjects{},
		photos:   &fakePhotos{},
		net:      NewConnectivity(false),
	}
	env.recon = NewReconciler(local, env.reports, env.entries, env.raw, env.projects, env.net,
		entity.DeviceIdentity{DeviceID: "device-1"}, nil,
		WithPhotoRepository(env.photos))
	return env
}

func draftReport(projectID uuid.UUID) *entity.Report {
	return &entity.Report{
		ID:          uuid.New(),
		ProjectID:   projectID,
		ReportDate:  "2026-03-14",
		Status:      constants.StatusDraft,
		CaptureMode: constants.CaptureFreeform,
	}
}

func TestGetReportCacheHitSkipsRemote(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	require.NoError(t, env.local.SaveReport(rep))

	got, err := env.recon.GetReport(context.Background(), rep.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rep.ID, got.ID)
	assert.Zero(t, env.reports.getCalls)
}

func TestGetReportMissOfflineReturnsNil(t *testing.T) {
	env := newTestEnv(t)
	got, err := env.recon.GetReport(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, env.reports.getCalls)
}

func TestGetReportMissOnlineFillsCache(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	env.reports.byID[rep.ID] = rep
	env.net.SetOnline(true)

	got, err := env.recon.GetReport(context.Background(), rep.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	cached, err := env.local.GetReport(rep.ID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, rep.ID, cached.ID)
}

func TestSaveReportStampsAndQueues(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())

	require.NoError(t, env.recon.SaveReport(context.Background(), rep))
	assert.Equal(t, "device-1", rep.DeviceID)
	assert.False(t, rep.LastSaved.IsZero())

	ops, err := env.local.PendingOps()
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, constants.OpReportSync, ops[0].Type)
	// Offline: nothing reached the remote store.
	assert.Empty(t, env.reports.upserts)
}

func TestSaveUserEditAppliesPath(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	require.NoError(t, env.local.SaveReport(rep))

	require.NoError(t, env.recon.SaveUserEdit(context.Background(), rep.ID, "overview.weather.highTemp", "57"))

	got, err := env.local.GetReport(rep.ID)
	require.NoError(t, err)
	assert.Equal(t, "57", got.UserEdits["overview.weather.highTemp"])
}

func TestConcurrentFieldEditsBothSurvive(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 200; i++ {
		rep := draftReport(uuid.New())
		require.NoError(t, env.local.SaveReport(rep))

		// Two racing edits to different fields of the same report. Last write
		// wins per field, so neither edit may be lost to a stale snapshot.
		start := make(chan struct{})
		var wg gosync.WaitGroup
		for _, kv := range [][2]string{
			{"overview.weather.highTemp", "57"},
			{"overview.weather.lowTemp", "41"},
		} {
			kv := kv
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				assert.NoError(t, env.recon.SaveUserEdit(context.Background(), rep.ID, kv[0], kv[1]))
			}()
		}
		close(start)
		wg.Wait()

		got, err := env.local.GetReport(rep.ID)
		require.NoError(t, err)
		assert.Equal(t, "57", got.UserEdits["overview.weather.highTemp"])
		assert.Equal(t, "41", got.UserEdits["overview.weather.lowTemp"])
	}
}

func TestDrainPushesCurrentRecordNotSnapshot(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	require.NoError(t, env.recon.SaveReport(context.Background(), rep))

	// Edit after the enqueue; the drain must see it.
	require.NoError(t, env.recon.SaveUserEdit(context.Background(), rep.ID, "summary", "late edit"))

	env.recon.Drain(context.Background())

	require.NotEmpty(t, env.reports.upserts)
	last := env.reports.upserts[len(env.reports.upserts)-1]
	assert.Equal(t, "late edit", last.UserEdits["summary"])

	ops, err := env.local.PendingOps()
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestDrainPushesPhotoMetadata(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	rep.Photos = []entity.Photo{{LocalID: "p1", Caption: "footing rebar"}}
	require.NoError(t, env.recon.SaveReport(context.Background(), rep))

	env.recon.Drain(context.Background())

	require.Len(t, env.photos.upserts, 1)
	assert.Equal(t, "p1", env.photos.upserts[0].LocalID)

	got, err := env.local.GetReport(rep.ID)
	require.NoError(t, err)
	require.Len(t, got.Photos, 1)
	assert.Equal(t, "remote-p1", got.Photos[0].RemoteID)
}

func TestDrainOfflineStopsEarlyWithoutBurningRetries(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	require.NoError(t, env.recon.SaveReport(context.Background(), rep))
	require.NoError(t, env.recon.SaveReport(context.Background(), rep))

	env.reports.upsertErr = errConn
	env.recon.Drain(context.Background())

	ops, err := env.local.PendingOps()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Zero(t, ops[0].Retries)
	assert.Zero(t, ops[1].Retries)
}

func TestDrainDropsAfterRetryCeiling(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	require.NoError(t, env.recon.SaveReport(context.Background(), rep))
	env.reports.upsertErr = errRejected

	for i := 0; i < constants.SyncMaxRetries; i++ {
		env.recon.Drain(context.Background())
	}

	ops, err := env.local.PendingOps()
	require.NoError(t, err)
	assert.Empty(t, ops, "operation should be dropped at the ceiling")

	// Local record is untouched by the drop.
	got, err := env.local.GetReport(rep.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestBackupEntryUpsertsLocallyAndMarksSyncedOnDrain(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	require.NoError(t, env.local.SaveReport(rep))

	e := entity.Entry{LocalID: "e1", Text: "first version"}
	require.NoError(t, env.recon.BackupEntry(context.Background(), rep.ID, e))

	// Second backup of the same local id replaces in place.
	e.Text = "second version"
	require.NoError(t, env.recon.BackupEntry(context.Background(), rep.ID, e))

	got, err := env.local.GetReport(rep.ID)
	require.NoError(t, err)
	require.Len(t, got.FieldNotes, 1)
	assert.Equal(t, "second version", got.FieldNotes[0].Text)

	env.recon.Drain(context.Background())

	got, err = env.local.GetReport(rep.ID)
	require.NoError(t, err)
	require.Len(t, got.FieldNotes, 1)
	assert.Equal(t, "remote-e1", got.FieldNotes[0].RemoteID)
}

func TestBackupEntryKeepsEarnedRemoteID(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	rep.FieldNotes = []entity.Entry{{LocalID: "e1", Text: "synced", RemoteID: "remote-e1"}}
	require.NoError(t, env.local.SaveReport(rep))

	require.NoError(t, env.recon.BackupEntry(context.Background(), rep.ID, entity.Entry{LocalID: "e1", Text: "edited"}))

	got, err := env.local.GetReport(rep.ID)
	require.NoError(t, err)
	require.Len(t, got.FieldNotes, 1)
	assert.Equal(t, "remote-e1", got.FieldNotes[0].RemoteID)
	assert.Equal(t, "edited", got.FieldNotes[0].Text)
}

func TestDeleteEntryRemovesLocallyAndQueuesDelete(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	rep.FieldNotes = []entity.Entry{{LocalID: "e1"}, {LocalID: "e2"}}
	require.NoError(t, env.local.SaveReport(rep))

	require.NoError(t, env.recon.DeleteEntry(context.Background(), rep.ID, "e1"))

	got, err := env.local.GetReport(rep.ID)
	require.NoError(t, err)
	require.Len(t, got.FieldNotes, 1)
	assert.Equal(t, "e2", got.FieldNotes[0].LocalID)

	env.recon.Drain(context.Background())
	assert.Equal(t, []string{"e1"}, env.entries.deletes)
}

func TestSyncRawCapturePushesCurrentEntries(t *testing.T) {
	env := newTestEnv(t)
	rep := draftReport(uuid.New())
	rep.FieldNotes = []entity.Entry{{LocalID: "e1", Text: "note"}}
	require.NoError(t, env.local.SaveReport(rep))

	require.NoError(t, env.recon.SyncRawCapture(context.Background(), rep.ID))
	env.recon.Drain(context.Background())

	require.Len(t, env.raw.replaces, 1)
	assert.Contains(t, env.raw.replaces[0], "entries")
}

func TestRefreshProjectsGuardsAgainstEmptyFetch(t *testing.T) {
	env := newTestEnv(t)
	cached := []entity.Project{{ID: uuid.New(), Name: "Riverside Tower", Status: "active"}}
	require.NoError(t, env.local.SaveProjects(cached))

	// Empty fetch: local bucket survives.
	got, err := env.recon.RefreshProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Riverside Tower", got[0].Name)

	// Non-empty fetch replaces the bucket.
	env.projects.projects = []entity.Project{
		{ID: uuid.New(), Name: "Harbor Bridge Rehab", Status: "active"},
	}
	got, err = env.recon.RefreshProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Harbor Bridge Rehab", got[0].Name)

	local, err := env.local.ListProjects()
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, "Harbor Bridge Rehab", local[0].Name)
}

func TestRefreshProjectsErrorLeavesCacheAlone(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.local.SaveProjects([]entity.Project{{ID: uuid.New(), Name: "Riverside Tower"}}))
	env.projects.err = errConn

	_, err := env.recon.RefreshProjects(context.Background())
	require.Error(t, err)

	local, err := env.local.ListProjects()
	require.NoError(t, err)
	assert.Len(t, local, 1)
}

func TestRefreshArchivesGuardsAgainstEmptyFetch(t *testing.T) {
	env := newTestEnv(t)
	projectID := uuid.New()
	cached := []entity.Report{{ID: uuid.New(), ProjectID: projectID, ReportDate: "2026-03-01", Status: constants.StatusSubmitted}}
	require.NoError(t, env.local.SaveArchives(projectID, cached))

	got, err := env.recon.RefreshArchives(context.Background(), projectID)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	env.reports.submitted = []entity.Report{
		{ID: uuid.New(), ProjectID: projectID, ReportDate: "2026-03-01", Status: constants.StatusSubmitted},
		{ID: uuid.New(), ProjectID: projectID, ReportDate: "2026-03-02", Status: constants.StatusSubmitted},
	}
	got, err = env.recon.RefreshArchives(context.Background(), projectID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestConnectivityReconnectEdge(t *testing.T) {
	c := NewConnectivity(false)
	fired := 0
	c.OnReconnect(func() { fired++ })

	c.SetOnline(true)
	assert.Equal(t, 1, fired)

	// Same-state sets do not re-fire.
	c.SetOnline(true)
	assert.Equal(t, 1, fired)

	c.SetOnline(false)
	c.SetOnline(true)
	assert.Equal(t, 2, fired)
}
