// Package sync is the local-first reconciler: reads prefer the local cache
// and fall back to the remote store, writes land locally first and reach the
// remote through a pending queue with idempotent upserts. At-least-once
// delivery; the upsert natural keys make replays harmless. No cross-device
// conflict detection happens here; the edit lock is the only mutual
// exclusion, and unlocked concurrent editors overwrite last-write-wins.
package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
	"github.com/fieldlog/fieldlog/internal/localstore"
	"github.com/fieldlog/fieldlog/internal/remote"
)

// Reconciler orchestrates the local store, the remote repositories, and the
// pending queue for one device. Safe for concurrent use.
type Reconciler struct {
	local    *localstore.Store
	reports  remote.ReportRepository
	entries  remote.EntryRepository
	raw      remote.RawCaptureRepository
	projects remote.ProjectRepository
	photos   remote.PhotoRepository
	net      *Connectivity
	logger   *slog.Logger

	maxRetries int
	deviceID   string

	mu       sync.Mutex
	draining bool

	// repLocks serializes read-modify-write cycles per report. Last write wins
	// per field, so two concurrent edits must never base their write on the
	// same stale snapshot.
	repLocks sync.Map
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithMaxRetries overrides the queue retry ceiling.
func WithMaxRetries(n int) Option {
	return func(r *Reconciler) {
		if n > 0 {
			r.maxRetries = n
		}
	}
}

// WithPhotoRepository enables photo-metadata write-through on report sync.
func WithPhotoRepository(photos remote.PhotoRepository) Option {
	return func(r *Reconciler) {
		r.photos = photos
	}
}

func NewReconciler(
	local *localstore.Store,
	reports remote.ReportRepository,
	entries remote.EntryRepository,
	raw remote.RawCaptureRepository,
	projects remote.ProjectRepository,
	net *Connectivity,
	device entity.DeviceIdentity,
	logger *slog.Logger,
	opts ...Option,
) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reconciler{
		local:      local,
		reports:    reports,
		entries:    entries,
		raw:        raw,
		projects:   projects,
		net:        net,
		logger:     logger,
		maxRetries: constants.SyncMaxRetries,
		deviceID:   device.DeviceID,
	}
	for _, o := range opts {
		o(r)
	}
	// Connectivity restored: replay the whole queue.
	net.OnReconnect(func() { go r.Drain(context.Background()) })
	return r
}

// GetReport is the local-first read: a cache hit returns without touching the
// network; a miss while offline returns nil (designed degradation, not an
// error); a miss while online fetches from the remote store and caches the
// result, so every successful cold read converges the cache.
func (r *Reconciler) GetReport(ctx context.Context, reportID uuid.UUID) (*entity.Report, error) {
	rep, err := r.local.GetReport(reportID)
	if err != nil {
		// Local-store failures are best-effort: log and fall through to the
		// remote path rather than failing the read.
		r.logger.Error("sync.read.local_failed", "report_id", reportID, "error", err)
	}
	if rep != nil {
		return rep, nil
	}
	if !r.net.Online() {
		return nil, nil
	}

	rep, err = r.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if rep != nil {
		if err := r.local.SaveReport(rep); err != nil {
			r.logger.Error("sync.read.cache_fill_failed", "report_id", reportID, "error", err)
		}
	}
	return rep, nil
}

// GetProjects reads the project roster local-first.
func (r *Reconciler) GetProjects(ctx context.Context) ([]entity.Project, error) {
	cached, err := r.local.ListProjects()
	if err != nil {
		r.logger.Error("sync.read.local_failed", "bucket", "projects", "error", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}
	if !r.net.Online() {
		return nil, nil
	}

	fetched, err := r.projects.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if len(fetched) > 0 {
		if err := r.local.SaveProjects(fetched); err != nil {
			r.logger.Error("sync.read.cache_fill_failed", "bucket", "projects", "error", err)
		}
	}
	return fetched, nil
}

// GetArchives reads a project's submitted reports local-first.
func (r *Reconciler) GetArchives(ctx context.Context, projectID uuid.UUID) ([]entity.Report, error) {
	cached, err := r.local.ListArchives(projectID)
	if err != nil {
		r.logger.Error("sync.read.local_failed", "bucket", "archives", "error", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}
	if !r.net.Online() {
		return nil, nil
	}

	fetched, err := r.reports.ListSubmitted(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(fetched) > 0 {
		if err := r.local.SaveArchives(projectID, fetched); err != nil {
			r.logger.Error("sync.read.cache_fill_failed", "bucket", "archives", "error", err)
		}
	}
	return fetched, nil
}

// SaveReport writes the report locally and queues a remote write-through.
// The local write is synchronous: no edit is ever lost to a crash.
func (r *Reconciler) SaveReport(ctx context.Context, rep *entity.Report) error {
	rep.DeviceID = r.deviceID
	rep.LastSaved = time.Now().UTC()
	if err := r.local.SaveReport(rep); err != nil {
		return err
	}
	if _, err := r.local.Enqueue(constants.OpReportSync, entity.ReportSyncPayload{ReportID: rep.ID.String()}); err != nil {
		return err
	}
	r.kick()
	return nil
}

// SaveUserEdit applies one field edit. Last write wins per field; edits from
// this device are applied in the order received.
func (r *Reconciler) SaveUserEdit(ctx context.Context, reportID uuid.UUID, path string, value any) error {
	defer r.lockReport(reportID)()
	rep, err := r.local.GetReport(reportID)
	if err != nil {
		return err
	}
	if rep == nil {
		return nil
	}
	if rep.UserEdits == nil {
		rep.UserEdits = make(map[string]any)
	}
	rep.UserEdits[path] = value
	return r.SaveReport(ctx, rep)
}

// BackupEntry updates the entry in the local record and queues its remote
// upsert. The (report, local entry id) natural key makes redelivery
// duplicate-free.
func (r *Reconciler) BackupEntry(ctx context.Context, reportID uuid.UUID, e entity.Entry) error {
	defer r.lockReport(reportID)()
	rep, err := r.local.GetReport(reportID)
	if err != nil {
		return err
	}
	if rep == nil {
		return nil
	}
	upsertEntryLocal(rep, e)
	rep.LastSaved = time.Now().UTC()
	if err := r.local.SaveReport(rep); err != nil {
		return err
	}

	payload := entity.EntryBackupPayload{
		ReportID:  rep.ID.String(),
		ProjectID: rep.ProjectID.String(),
		Entry:     e,
	}
	if _, err := r.local.Enqueue(constants.OpEntryBackup, payload); err != nil {
		return err
	}
	r.kick()
	return nil
}

// DeleteEntry removes the entry locally and queues the remote delete.
func (r *Reconciler) DeleteEntry(ctx context.Context, reportID uuid.UUID, localEntryID string) error {
	defer r.lockReport(reportID)()
	rep, err := r.local.GetReport(reportID)
	if err != nil {
		return err
	}
	if rep == nil {
		return nil
	}
	removeEntryLocal(rep, localEntryID)
	rep.LastSaved = time.Now().UTC()
	if err := r.local.SaveReport(rep); err != nil {
		return err
	}

	payload := entity.EntryBackupPayload{
		ReportID: rep.ID.String(),
		Entry:    entity.Entry{LocalID: localEntryID},
	}
	if _, err := r.local.Enqueue(constants.OpEntryDelete, payload); err != nil {
		return err
	}
	r.kick()
	return nil
}

// SyncRawCapture queues replacement of the report's raw-capture row.
func (r *Reconciler) SyncRawCapture(ctx context.Context, reportID uuid.UUID) error {
	if _, err := r.local.Enqueue(constants.OpRawCaptureSync, entity.RawCapturePayload{ReportID: reportID.String()}); err != nil {
		return err
	}
	r.kick()
	return nil
}

// RefreshProjects is the explicit cloud refresh: fetch, and only clear the
// local bucket after a non-empty fetch succeeds. A transient empty response
// or a network error looks identical to "zero records", so neither may wipe
// local data.
func (r *Reconciler) RefreshProjects(ctx context.Context) ([]entity.Project, error) {
	fetched, err := r.projects.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if len(fetched) == 0 {
		r.logger.Warn("sync.refresh.empty_fetch", "bucket", "projects")
		return r.local.ListProjects()
	}
	if err := r.local.ClearProjects(); err != nil {
		return nil, err
	}
	if err := r.local.SaveProjects(fetched); err != nil {
		return nil, err
	}
	return fetched, nil
}

// RefreshArchives is the explicit cloud refresh for a project's archive
// bucket, with the same non-empty guard.
func (r *Reconciler) RefreshArchives(ctx context.Context, projectID uuid.UUID) ([]entity.Report, error) {
	fetched, err := r.reports.ListSubmitted(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(fetched) == 0 {
		r.logger.Warn("sync.refresh.empty_fetch", "bucket", "archives", "project_id", projectID)
		return r.local.ListArchives(projectID)
	}
	if err := r.local.ClearArchives(projectID); err != nil {
		return nil, err
	}
	if err := r.local.SaveArchives(projectID, fetched); err != nil {
		return nil, err
	}
	return fetched, nil
}

// lockReport locks the report's mutation mutex and returns the unlock.
func (r *Reconciler) lockReport(id uuid.UUID) func() {
	v, _ := r.repLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// kick starts an async drain when online. Write paths call it after
// enqueueing so write-through is immediate while connected.
func (r *Reconciler) kick() {
	if !r.net.Online() {
		return
	}
	go r.Drain(context.Background())
}

func upsertEntryLocal(rep *entity.Report, e entity.Entry) {
	list := rep.Entries()
	for i := range list {
		if list[i].LocalID == e.LocalID {
			// Keep the remote id a previous backup earned.
			if e.RemoteID == "" {
				e.RemoteID = list[i].RemoteID
			}
			list[i] = e
			return
		}
	}
	if rep.CaptureMode == constants.CaptureGuided {
		rep.GuidedNotes = append(rep.GuidedNotes, e)
	} else {
		rep.FieldNotes = append(rep.FieldNotes, e)
	}
}

func removeEntryLocal(rep *entity.Report, localEntryID string) {
	filter := func(list []entity.Entry) []entity.Entry {
		kept := list[:0]
		for _, e := range list {
			if e.LocalID != localEntryID {
				kept = append(kept, e)
			}
		}
		return kept
	}
	rep.FieldNotes = filter(rep.FieldNotes)
	rep.GuidedNotes = filter(rep.GuidedNotes)
}
