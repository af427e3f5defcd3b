package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/lock"
	"github.com/fieldlog/fieldlog/internal/utils"

	fieldlogpb "github.com/fieldlog/fieldlog/gen/proto/fieldlog/v1"
)

type LocksServer struct {
	fieldlogpb.UnimplementedLocksServiceServer
	mgr    *lock.Manager
	logger *slog.Logger
}

func NewLocksServer(mgr *lock.Manager, logger *slog.Logger) *LocksServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocksServer{mgr: mgr, logger: logger}
}

func parseLockTarget(rawProject, rawDate string) (uuid.UUID, string, error) {
	pid := strings.TrimSpace(rawProject)
	projectID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return uuid.Nil, "", common.InvalidArgumentError("project_id must be a UUID")
	}
	date := strings.TrimSpace(rawDate)
	if _, err := utils.ParseYMD(date); err != nil {
		return uuid.Nil, "", common.InvalidArgumentError("report_date must be YYYY-MM-DD")
	}
	return projectID, date, nil
}

func toPBLockStatus(st lock.Status) *fieldlogpb.LockStatus {
	out := &fieldlogpb.LockStatus{
		Available:  st.Available,
		HolderName: st.HolderName,
		DeviceId:   st.DeviceID,
	}
	if !st.AcquiredAt.IsZero() {
		out.AcquiredAt = st.AcquiredAt.UTC().Format(time.RFC3339)
	}
	if !st.HeartbeatAt.IsZero() {
		out.HeartbeatAt = st.HeartbeatAt.UTC().Format(time.RFC3339)
	}
	return out
}

func (s *LocksServer) CheckLock(ctx context.Context, req *fieldlogpb.CheckLockRequest) (*fieldlogpb.LockStatus, error) {
	projectID, date, err := parseLockTarget(req.GetProjectId(), req.GetReportDate())
	if err != nil {
		return nil, err
	}
	st, err := s.mgr.Check(ctx, projectID, date)
	if err != nil {
		s.logger.Error("server.locks.check_failed", "project_id", projectID, "report_date", date, "error", err)
		return nil, status.Errorf(codes.Unavailable, "lock check: %v", err)
	}
	return toPBLockStatus(st), nil
}

func (s *LocksServer) AcquireLock(ctx context.Context, req *fieldlogpb.AcquireLockRequest) (*fieldlogpb.LockStatus, error) {
	projectID, date, err := parseLockTarget(req.GetProjectId(), req.GetReportDate())
	if err != nil {
		return nil, err
	}
	st, err := s.mgr.Acquire(ctx, projectID, date, strings.TrimSpace(req.GetDisplayName()))
	if err != nil {
		s.logger.Error("server.locks.acquire_failed", "project_id", projectID, "report_date", date, "error", err)
		return nil, status.Errorf(codes.Unavailable, "lock acquire: %v", err)
	}
	return toPBLockStatus(st), nil
}

func (s *LocksServer) ReleaseLock(ctx context.Context, req *fieldlogpb.ReleaseLockRequest) (*fieldlogpb.ReleaseLockResponse, error) {
	projectID, date, err := parseLockTarget(req.GetProjectId(), req.GetReportDate())
	if err != nil {
		return nil, err
	}
	if err := s.mgr.Release(ctx, projectID, date); err != nil {
		s.logger.Error("server.locks.release_failed", "project_id", projectID, "report_date", date, "error", err)
		return nil, status.Errorf(codes.Unavailable, "lock release: %v", err)
	}
	return &fieldlogpb.ReleaseLockResponse{}, nil
}
