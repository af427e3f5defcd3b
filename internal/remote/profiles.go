package remote

import (
	"context"
	"log/slog"

	"github.com/fieldlog/fieldlog/gen/ent"
	"github.com/fieldlog/fieldlog/gen/ent/userprofile"
	"github.com/fieldlog/fieldlog/internal/entity"
)

type ProfileRepository interface {
	// UpsertByDeviceID registers the device identity with the remote store,
	// keyed on the device id so a profile exists before any cloud identity.
	UpsertByDeviceID(ctx context.Context, id entity.DeviceIdentity) error
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{client: client, logger: logger}
}

func (r *profileRepository) UpsertByDeviceID(ctx context.Context, id entity.DeviceIdentity) error {
	err := r.client.UserProfile.Create().
		SetDeviceID(id.DeviceID).
		SetDisplayName(id.DisplayName).
		OnConflictColumns(userprofile.FieldDeviceID).
		Update(func(u *ent.UserProfileUpsert) {
			u.UpdateDisplayName()
		}).
		Exec(ctx)
	if err != nil {
		r.logger.Error("remote.profiles.upsert_failed", "device_id", id.DeviceID, "error", err)
		return classify("upsert profile", err)
	}
	return nil
}
