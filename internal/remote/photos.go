package remote

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/gen/ent"
	"github.com/fieldlog/fieldlog/gen/ent/photo"
	"github.com/fieldlog/fieldlog/internal/entity"
)

type PhotoRepository interface {
	// UpsertPhoto writes photo metadata keyed on (report, local photo id).
	UpsertPhoto(ctx context.Context, reportID uuid.UUID, p entity.Photo) (string, error)
}

type photoRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPhotoRepository(client *ent.Client, logger *slog.Logger) PhotoRepository {
	return &photoRepository{client: client, logger: logger}
}

func (r *photoRepository) UpsertPhoto(ctx context.Context, reportID uuid.UUID, p entity.Photo) (string, error) {
	create := r.client.Photo.Create().
		SetReportID(reportID).
		SetLocalPhotoID(p.LocalID).
		SetCaption(p.Caption).
		SetStorePath(p.StorePath).
		SetTakenAt(p.TakenAt)
	if p.Latitude != nil {
		create = create.SetLatitude(*p.Latitude)
	}
	if p.Longitude != nil {
		create = create.SetLongitude(*p.Longitude)
	}

	id, err := create.
		OnConflictColumns(photo.FieldReportID, photo.FieldLocalPhotoID).
		Update(func(u *ent.PhotoUpsert) {
			u.UpdateCaption()
			u.UpdateStorePath()
		}).
		ID(ctx)
	if err != nil {
		r.logger.Error("remote.photos.upsert_failed",
			"report_id", reportID, "local_photo_id", p.LocalID, "error", err)
		return "", classify("upsert photo", err)
	}
	return id.String(), nil
}
