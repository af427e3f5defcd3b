package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/entity"
	syncpkg "github.com/fieldlog/fieldlog/internal/sync"
	"github.com/fieldlog/fieldlog/internal/utils"

	fieldlogpb "github.com/fieldlog/fieldlog/gen/proto/fieldlog/v1"
)

type ProjectsServer struct {
	fieldlogpb.UnimplementedProjectsServiceServer
	recon  *syncpkg.Reconciler
	logger *slog.Logger
}

func NewProjectsServer(recon *syncpkg.Reconciler, logger *slog.Logger) *ProjectsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectsServer{recon: recon, logger: logger}
}

func toPBProjects(projects []entity.Project) *fieldlogpb.ListProjectsResponse {
	out := make([]*fieldlogpb.Project, 0, len(projects))
	for i := range projects {
		out = append(out, utils.ToPBProject(&projects[i]))
	}
	return &fieldlogpb.ListProjectsResponse{Projects: out}
}

func toPBArchives(reports []entity.Report) *fieldlogpb.ListArchivesResponse {
	out := make([]*fieldlogpb.Report, 0, len(reports))
	for i := range reports {
		out = append(out, utils.ToPBReport(&reports[i]))
	}
	return &fieldlogpb.ListArchivesResponse{Reports: out}
}

func (s *ProjectsServer) ListProjects(ctx context.Context, _ *fieldlogpb.ListProjectsRequest) (*fieldlogpb.ListProjectsResponse, error) {
	projects, err := s.recon.GetProjects(ctx)
	if err != nil {
		s.logger.Error("server.projects.list_failed", "error", err)
		return nil, common.InternalErrorf("list projects: %v", err)
	}
	return toPBProjects(projects), nil
}

func (s *ProjectsServer) RefreshProjects(ctx context.Context, _ *fieldlogpb.RefreshProjectsRequest) (*fieldlogpb.ListProjectsResponse, error) {
	projects, err := s.recon.RefreshProjects(ctx)
	if err != nil {
		s.logger.Error("server.projects.refresh_failed", "error", err)
		return nil, status.Errorf(codes.Unavailable, "refresh projects: %v", err)
	}
	return toPBProjects(projects), nil
}

func parseProjectID(raw string) (uuid.UUID, error) {
	pid := strings.TrimSpace(raw)
	projectID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return uuid.Nil, common.InvalidArgumentError("project_id must be a UUID")
	}
	return projectID, nil
}

func (s *ProjectsServer) ListArchives(ctx context.Context, req *fieldlogpb.ListArchivesRequest) (*fieldlogpb.ListArchivesResponse, error) {
	projectID, err := parseProjectID(req.GetProjectId())
	if err != nil {
		return nil, err
	}
	reports, err := s.recon.GetArchives(ctx, projectID)
	if err != nil {
		s.logger.Error("server.archives.list_failed", "project_id", projectID, "error", err)
		return nil, common.InternalErrorf("list archives: %v", err)
	}
	return toPBArchives(reports), nil
}

func (s *ProjectsServer) RefreshArchives(ctx context.Context, req *fieldlogpb.RefreshArchivesRequest) (*fieldlogpb.ListArchivesResponse, error) {
	projectID, err := parseProjectID(req.GetProjectId())
	if err != nil {
		return nil, err
	}
	reports, err := s.recon.RefreshArchives(ctx, projectID)
	if err != nil {
		s.logger.Error("server.archives.refresh_failed", "project_id", projectID, "error", err)
		return nil, status.Errorf(codes.Unavailable, "refresh archives: %v", err)
	}
	return toPBArchives(reports), nil
}
