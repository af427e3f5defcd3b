package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/entity"
	"github.com/fieldlog/fieldlog/internal/localstore"
	"github.com/fieldlog/fieldlog/internal/remote"

	fieldlogpb "github.com/fieldlog/fieldlog/gen/proto/fieldlog/v1"
)

// ProfileServer serves the device identity. The identity lives locally; the
// remote profile row is a best-effort mirror so other devices can render a
// holder name in lock messages.
type ProfileServer struct {
	fieldlogpb.UnimplementedProfileServiceServer
	local    *localstore.Store
	profiles remote.ProfileRepository
	logger   *slog.Logger
}

func NewProfileServer(local *localstore.Store, profiles remote.ProfileRepository, logger *slog.Logger) *ProfileServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileServer{local: local, profiles: profiles, logger: logger}
}

func toPBIdentity(id entity.DeviceIdentity) *fieldlogpb.DeviceIdentity {
	return &fieldlogpb.DeviceIdentity{
		DeviceId:    id.DeviceID,
		DisplayName: id.DisplayName,
		CreatedAt:   id.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *ProfileServer) GetDeviceIdentity(ctx context.Context, _ *fieldlogpb.GetDeviceIdentityRequest) (*fieldlogpb.DeviceIdentity, error) {
	id, err := s.local.DeviceIdentity()
	if err != nil {
		s.logger.Error("server.profiles.identity_failed", "error", err)
		return nil, common.InternalErrorf("device identity: %v", err)
	}
	return toPBIdentity(id), nil
}

func (s *ProfileServer) SetDisplayName(ctx context.Context, req *fieldlogpb.SetDisplayNameRequest) (*fieldlogpb.DeviceIdentity, error) {
	name := strings.TrimSpace(req.GetDisplayName())
	if name == "" {
		return nil, common.InvalidArgumentError("display_name is required")
	}
	id, err := s.local.SetDisplayName(name)
	if err != nil {
		s.logger.Error("server.profiles.set_name_failed", "error", err)
		return nil, common.InternalErrorf("set display name: %v", err)
	}
	if err := s.profiles.UpsertByDeviceID(ctx, id); err != nil {
		// Local rename already persisted; the mirror catches up next time.
		s.logger.Warn("server.profiles.remote_upsert_failed", "device_id", id.DeviceID, "error", err)
	}
	return toPBIdentity(id), nil
}
