package server

import (
	"context"
	"log/slog"

	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/export"

	fieldlogpb "github.com/fieldlog/fieldlog/gen/proto/fieldlog/v1"
)

type ExportServer struct {
	fieldlogpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportArchive(ctx context.Context, req *fieldlogpb.ExportArchiveRequest) (*fieldlogpb.ExportArchiveResponse, error) {
	projectID, err := parseProjectID(req.GetProjectId())
	if err != nil {
		return nil, err
	}
	xlsx, err := s.svc.ExportArchiveXLSX(ctx, projectID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "project_id", projectID, "error", err)
		return nil, common.InternalErrorf("export archive: %v", err)
	}
	return &fieldlogpb.ExportArchiveResponse{Xlsx: xlsx}, nil
}
