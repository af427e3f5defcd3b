package remote

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/gen/ent"
	"github.com/fieldlog/fieldlog/gen/ent/editlock"
	"github.com/fieldlog/fieldlog/internal/entity"
	"github.com/fieldlog/fieldlog/internal/utils"
)

type LockRepository interface {
	// Get returns the lock row for (project, date), or nil if none exists.
	Get(ctx context.Context, projectID uuid.UUID, reportDate string) (*entity.EditLock, error)

	// TryInsert attempts the single conflict-resolving write that makes
	// acquisition atomic: insert with DO NOTHING on the (project, date)
	// conflict target, then read back the surviving row. Two racing devices
	// both reach the insert; only one row survives, and both see it.
	TryInsert(ctx context.Context, lock entity.EditLock) (*entity.EditLock, error)

	// Heartbeat renews the lock's timestamp, filtered by holder so a lock
	// that changed hands is never renewed by the old holder. Returns the
	// number of rows renewed.
	Heartbeat(ctx context.Context, projectID uuid.UUID, reportDate, deviceID string, at time.Time) (int, error)

	// Delete removes the lock filtered by key and holder identity. Callers
	// pass another device's id only for stale cleanup.
	Delete(ctx context.Context, projectID uuid.UUID, reportDate, deviceID string) error
}

type lockRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewLockRepository(client *ent.Client, logger *slog.Logger) LockRepository {
	return &lockRepository{client: client, logger: logger}
}

func (r *lockRepository) Get(ctx context.Context, projectID uuid.UUID, reportDate string) (*entity.EditLock, error) {
	date, err := utils.ParseYMD(reportDate)
	if err != nil {
		return nil, err
	}
	row, err := r.client.EditLock.Query().
		Where(editlock.ProjectID(projectID), editlock.ReportDateEQ(date)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get lock", err)
	}
	l := toLock(row)
	return &l, nil
}

func (r *lockRepository) TryInsert(ctx context.Context, lock entity.EditLock) (*entity.EditLock, error) {
	date, err := utils.ParseYMD(lock.ReportDate)
	if err != nil {
		return nil, err
	}

	err = r.client.EditLock.Create().
		SetProjectID(lock.ProjectID).
		SetReportDate(date).
		SetDeviceID(lock.DeviceID).
		SetHolderName(lock.HolderName).
		SetAcquiredAt(lock.AcquiredAt).
		SetHeartbeatAt(lock.HeartbeatAt).
		OnConflictColumns(editlock.FieldProjectID, editlock.FieldReportDate).
		Ignore().
		Exec(ctx)
	if err != nil {
		r.logger.Error("remote.locks.insert_failed",
			"project_id", lock.ProjectID, "report_date", lock.ReportDate, "error", err)
		return nil, classify("insert lock", err)
	}

	// Read back the surviving row: ours on a clean insert, the competitor's
	// if we lost the race.
	return r.Get(ctx, lock.ProjectID, lock.ReportDate)
}

func (r *lockRepository) Heartbeat(ctx context.Context, projectID uuid.UUID, reportDate, deviceID string, at time.Time) (int, error) {
	date, err := utils.ParseYMD(reportDate)
	if err != nil {
		return 0, err
	}
	n, err := r.client.EditLock.Update().
		Where(
			editlock.ProjectID(projectID),
			editlock.ReportDateEQ(date),
			editlock.DeviceID(deviceID),
		).
		SetHeartbeatAt(at).
		Save(ctx)
	if err != nil {
		return 0, classify("heartbeat lock", err)
	}
	return n, nil
}

func (r *lockRepository) Delete(ctx context.Context, projectID uuid.UUID, reportDate, deviceID string) error {
	date, err := utils.ParseYMD(reportDate)
	if err != nil {
		return err
	}
	_, err = r.client.EditLock.Delete().
		Where(
			editlock.ProjectID(projectID),
			editlock.ReportDateEQ(date),
			editlock.DeviceID(deviceID),
		).
		Exec(ctx)
	if err != nil {
		return classify("delete lock", err)
	}
	return nil
}

func toLock(row *ent.EditLock) entity.EditLock {
	return entity.EditLock{
		ProjectID:   row.ProjectID,
		ReportDate:  utils.FormatYMD(row.ReportDate),
		DeviceID:    row.DeviceID,
		HolderName:  row.HolderName,
		AcquiredAt:  row.AcquiredAt,
		HeartbeatAt: row.HeartbeatAt,
	}
}
