package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/entity"
)

// Drain replays the pending queue in enqueue order. Single-flight: a second
// trigger while a drain is running is a no-op. A non-offline failure burns a
// retry and the drain moves on; hitting the ceiling drops the operation with
// a loud log (an intentional data-loss boundary, local data stays intact).
// An offline failure stops the drain early with counters untouched; the next
// reconnect resumes from the full list, not mid-way. Queue volumes are small,
// so simplicity wins over throughput.
func (r *Reconciler) Drain(ctx context.Context) {
	r.mu.Lock()
	if r.draining {
		r.mu.Unlock()
		return
	}
	r.draining = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.draining = false
		r.mu.Unlock()
	}()

	ops, err := r.local.PendingOps()
	if err != nil {
		r.logger.Error("sync.queue.load_failed", "error", err)
		return
	}
	if len(ops) == 0 {
		return
	}
	r.logger.Info("sync.queue.drain_start", "depth", len(ops))

	for _, op := range ops {
		err := r.apply(ctx, op)
		if err == nil {
			if err := r.local.RemoveOp(op.ID); err != nil {
				r.logger.Error("sync.queue.remove_failed", "op_id", op.ID, "error", err)
			}
			continue
		}

		if common.IsOffline(err) {
			r.logger.Info("sync.queue.drain_paused", "op_id", op.ID, "type", op.Type)
			return
		}

		retries, berr := r.local.BumpRetry(op.ID)
		if berr != nil {
			r.logger.Error("sync.queue.retry_bump_failed", "op_id", op.ID, "error", berr)
			continue
		}
		if retries >= r.maxRetries {
			if rerr := r.local.RemoveOp(op.ID); rerr != nil {
				r.logger.Error("sync.queue.remove_failed", "op_id", op.ID, "error", rerr)
			}
			r.logger.Error("sync.queue.op_dropped",
				"op_id", op.ID, "type", op.Type, "retries", retries, "error", err)
			continue
		}
		r.logger.Warn("sync.queue.op_failed",
			"op_id", op.ID, "type", op.Type, "retries", retries, "error", err)
	}

	r.logger.Info("sync.queue.drain_done")
}

func (r *Reconciler) apply(ctx context.Context, op entity.SyncOperation) error {
	switch op.Type {
	case constants.OpEntryBackup:
		var p entity.EntryBackupPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", op.Type, err)
		}
		reportID, err := uuid.Parse(p.ReportID)
		if err != nil {
			return err
		}
		remoteID, err := r.entries.UpsertEntry(ctx, reportID, p.Entry)
		if err != nil {
			return err
		}
		r.markEntrySynced(reportID, p.Entry.LocalID, remoteID)
		return nil

	case constants.OpEntryDelete:
		var p entity.EntryBackupPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", op.Type, err)
		}
		reportID, err := uuid.Parse(p.ReportID)
		if err != nil {
			return err
		}
		return r.entries.DeleteEntry(ctx, reportID, p.Entry.LocalID)

	case constants.OpReportSync:
		var p entity.ReportSyncPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", op.Type, err)
		}
		reportID, err := uuid.Parse(p.ReportID)
		if err != nil {
			return err
		}
		// Always push the current local record, never the enqueue-time
		// snapshot, so a drained backlog cannot clobber newer edits.
		rep, err := r.local.GetReport(reportID)
		if err != nil {
			return err
		}
		if rep == nil {
			return nil
		}
		if err := r.reports.UpsertReport(ctx, rep); err != nil {
			return err
		}
		return r.pushPhotos(ctx, rep)

	case constants.OpRawCaptureSync:
		var p entity.RawCapturePayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", op.Type, err)
		}
		reportID, err := uuid.Parse(p.ReportID)
		if err != nil {
			return err
		}
		rep, err := r.local.GetReport(reportID)
		if err != nil {
			return err
		}
		if rep == nil {
			return nil
		}
		return r.raw.Replace(ctx, reportID, string(rep.CaptureMode), rawCaptureDoc(rep))

	default:
		// Unknown types are dropped as successes; retrying cannot fix them.
		r.logger.Error("sync.queue.unknown_op_type", "op_id", op.ID, "type", op.Type)
		return nil
	}
}

// pushPhotos upserts the report's photo metadata rows. Keyed on (report,
// local photo id), so replays after a mid-list failure are harmless.
func (r *Reconciler) pushPhotos(ctx context.Context, rep *entity.Report) error {
	if r.photos == nil || len(rep.Photos) == 0 {
		return nil
	}
	remoteIDs := make(map[string]string, len(rep.Photos))
	for _, p := range rep.Photos {
		remoteID, err := r.photos.UpsertPhoto(ctx, rep.ID, p)
		if err != nil {
			return err
		}
		if remoteID != "" {
			remoteIDs[p.LocalID] = remoteID
		}
	}
	r.markPhotosSynced(rep.ID, remoteIDs)
	return nil
}

// markPhotosSynced records the remote ids photo upserts earned. Re-reads the
// record under the report lock so the mark cannot clobber a concurrent edit.
func (r *Reconciler) markPhotosSynced(reportID uuid.UUID, remoteIDs map[string]string) {
	defer r.lockReport(reportID)()
	rep, err := r.local.GetReport(reportID)
	if err != nil || rep == nil {
		return
	}
	changed := false
	for i := range rep.Photos {
		if id, ok := remoteIDs[rep.Photos[i].LocalID]; ok && rep.Photos[i].RemoteID != id {
			rep.Photos[i].RemoteID = id
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := r.local.SaveReport(rep); err != nil {
		r.logger.Error("sync.queue.photo_mark_failed", "report_id", reportID, "error", err)
	}
}

// markEntrySynced records the remote id a backup earned. From this point the
// report's capture mode is frozen.
func (r *Reconciler) markEntrySynced(reportID uuid.UUID, localEntryID, remoteID string) {
	defer r.lockReport(reportID)()
	rep, err := r.local.GetReport(reportID)
	if err != nil || rep == nil {
		return
	}
	for _, list := range [][]entity.Entry{rep.FieldNotes, rep.GuidedNotes} {
		for i := range list {
			if list[i].LocalID == localEntryID {
				list[i].RemoteID = remoteID
			}
		}
	}
	if err := r.local.SaveReport(rep); err != nil {
		r.logger.Error("sync.queue.mark_synced_failed", "report_id", reportID, "error", err)
	}
}

func rawCaptureDoc(rep *entity.Report) map[string]any {
	doc := map[string]any{
		"entries": rep.Entries(),
	}
	if rep.OriginalInput != nil {
		if rep.OriginalInput.Weather != nil {
			doc["weather"] = rep.OriginalInput.Weather
		}
		if rep.OriginalInput.Safety != nil {
			doc["safety"] = rep.OriginalInput.Safety
		}
	}
	bs, err := json.Marshal(doc)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if json.Unmarshal(bs, &out) != nil {
		return map[string]any{}
	}
	return out
}
