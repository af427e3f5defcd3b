package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/entity"
	"github.com/fieldlog/fieldlog/internal/localstore"
	"github.com/fieldlog/fieldlog/internal/refine"
	"github.com/fieldlog/fieldlog/internal/rules"
	syncpkg "github.com/fieldlog/fieldlog/internal/sync"
	"github.com/fieldlog/fieldlog/internal/utils"

	fieldlogpb "github.com/fieldlog/fieldlog/gen/proto/fieldlog/v1"
)

type ReportsServer struct {
	fieldlogpb.UnimplementedReportsServiceServer
	recon   *syncpkg.Reconciler
	local   *localstore.Store
	refiner *refine.Client
	logger  *slog.Logger
}

func NewReportsServer(recon *syncpkg.Reconciler, local *localstore.Store, refiner *refine.Client, logger *slog.Logger) *ReportsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportsServer{recon: recon, local: local, refiner: refiner, logger: logger}
}

func parseReportID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("report_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("report_id must be a UUID")
	}
	return id, nil
}

// getReport loads a report or maps its absence to a gRPC status.
func (s *ReportsServer) getReport(ctx context.Context, rawID string) (*entity.Report, error) {
	id, err := parseReportID(rawID)
	if err != nil {
		return nil, err
	}
	rep, err := s.recon.GetReport(ctx, id)
	if err != nil {
		s.logger.Error("server.reports.get_failed", "report_id", id, "error", err)
		return nil, common.InternalErrorf("get report: %v", err)
	}
	if rep == nil {
		return nil, common.NotFoundError("report not found")
	}
	return rep, nil
}

func (s *ReportsServer) GetReport(ctx context.Context, req *fieldlogpb.GetReportRequest) (*fieldlogpb.GetReportResponse, error) {
	id, err := parseReportID(req.GetReportId())
	if err != nil {
		return nil, err
	}
	rep, err := s.recon.GetReport(ctx, id)
	if err != nil {
		s.logger.Error("server.reports.get_failed", "report_id", id, "error", err)
		return nil, common.InternalErrorf("get report: %v", err)
	}
	if rep == nil {
		// Neither cached nor reachable; the client renders its offline state.
		return &fieldlogpb.GetReportResponse{}, nil
	}
	return &fieldlogpb.GetReportResponse{Report: utils.ToPBReport(rep)}, nil
}

func (s *ReportsServer) SaveReport(ctx context.Context, req *fieldlogpb.SaveReportRequest) (*fieldlogpb.SaveReportResponse, error) {
	if req.GetReport() == nil {
		return nil, common.InvalidArgumentError("report is required")
	}
	rep, err := utils.FromPBReport(req.GetReport())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("report invalid: %v", err)
	}
	if err := s.recon.SaveReport(ctx, rep); err != nil {
		s.logger.Error("server.reports.save_failed", "report_id", rep.ID, "error", err)
		return nil, common.InternalErrorf("save report: %v", err)
	}
	return &fieldlogpb.SaveReportResponse{}, nil
}

func (s *ReportsServer) SaveFieldEdit(ctx context.Context, req *fieldlogpb.SaveFieldEditRequest) (*fieldlogpb.SaveFieldEditResponse, error) {
	id, err := parseReportID(req.GetReportId())
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, common.InvalidArgumentError("path is required")
	}
	var value any
	if raw := req.GetValueJson(); raw != "" {
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, common.InvalidArgumentErrorf("value_json invalid: %v", err)
		}
	}
	if err := s.recon.SaveUserEdit(ctx, id, path, value); err != nil {
		s.logger.Error("server.reports.save_edit_failed", "report_id", id, "path", path, "error", err)
		return nil, common.InternalErrorf("save field edit: %v", err)
	}
	return &fieldlogpb.SaveFieldEditResponse{}, nil
}

func (s *ReportsServer) SetSectionToggle(ctx context.Context, req *fieldlogpb.SetSectionToggleRequest) (*fieldlogpb.SetSectionToggleResponse, error) {
	rep, err := s.getReport(ctx, req.GetReportId())
	if err != nil {
		return nil, err
	}
	section := strings.TrimSpace(req.GetSection())
	if section == "" {
		return nil, common.InvalidArgumentError("section is required")
	}
	res := rules.SetToggle(rep, section, req.GetValue())
	if res.Allowed {
		if err := s.recon.SaveReport(ctx, rep); err != nil {
			s.logger.Error("server.reports.toggle_save_failed", "report_id", rep.ID, "section", section, "error", err)
			return nil, common.InternalErrorf("save toggle: %v", err)
		}
	}
	out := &fieldlogpb.SetSectionToggleResponse{Allowed: res.Allowed}
	if res.CurrentValue != nil {
		out.CurrentValue = res.CurrentValue
	}
	return out, nil
}

func (s *ReportsServer) TransitionStatus(ctx context.Context, req *fieldlogpb.TransitionStatusRequest) (*fieldlogpb.TransitionStatusResponse, error) {
	rep, err := s.getReport(ctx, req.GetReportId())
	if err != nil {
		return nil, err
	}
	target := constants.ReportStatus(strings.TrimSpace(req.GetTargetStatus()))
	res := rules.CanTransition(rep.Status, target)
	if !res.Allowed {
		return &fieldlogpb.TransitionStatusResponse{Allowed: false, Reason: res.Reason}, nil
	}
	if rep.Status != target {
		rep.Status = target
		if err := s.recon.SaveReport(ctx, rep); err != nil {
			s.logger.Error("server.reports.transition_save_failed", "report_id", rep.ID, "target", target, "error", err)
			return nil, common.InternalErrorf("save transition: %v", err)
		}
	}
	return &fieldlogpb.TransitionStatusResponse{Allowed: true, Report: utils.ToPBReport(rep)}, nil
}

func (s *ReportsServer) SwitchCaptureMode(ctx context.Context, req *fieldlogpb.SwitchCaptureModeRequest) (*fieldlogpb.SwitchCaptureModeResponse, error) {
	rep, err := s.getReport(ctx, req.GetReportId())
	if err != nil {
		return nil, err
	}
	res := rules.CanSwitchCaptureMode(rep)
	if !res.Allowed {
		return &fieldlogpb.SwitchCaptureModeResponse{Allowed: false, Reason: res.Reason}, nil
	}
	// Flip the mode; migration carries unsynced entries into the target
	// mode's list so no captured text is lost.
	entries := rep.Entries()
	if rep.CaptureMode == constants.CaptureGuided {
		rep.CaptureMode = constants.CaptureFreeform
		if res.RequiresMigration {
			rep.FieldNotes = append(rep.FieldNotes, entries...)
			rep.GuidedNotes = nil
		}
	} else {
		rep.CaptureMode = constants.CaptureGuided
		if res.RequiresMigration {
			rep.GuidedNotes = append(rep.GuidedNotes, entries...)
			rep.FieldNotes = nil
		}
	}
	if err := s.recon.SaveReport(ctx, rep); err != nil {
		s.logger.Error("server.reports.switch_mode_save_failed", "report_id", rep.ID, "error", err)
		return nil, common.InternalErrorf("save capture mode: %v", err)
	}
	return &fieldlogpb.SwitchCaptureModeResponse{
		Allowed:           true,
		RequiresMigration: res.RequiresMigration,
	}, nil
}

func (s *ReportsServer) CheckEligibility(ctx context.Context, req *fieldlogpb.CheckEligibilityRequest) (*fieldlogpb.CheckEligibilityResponse, error) {
	pid := strings.TrimSpace(req.GetProjectId())
	projectID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return nil, common.InvalidArgumentError("project_id must be a UUID")
	}
	refs, err := s.local.ListCurrentReports(projectID)
	if err != nil {
		s.logger.Error("server.reports.eligibility_failed", "project_id", projectID, "error", err)
		return nil, common.InternalErrorf("list reports: %v", err)
	}
	res := rules.CanStartNewReport(refs, projectID, time.Now())
	out := &fieldlogpb.CheckEligibilityResponse{
		Allowed: res.Allowed,
		Reason:  string(res.Reason),
	}
	if res.BlockingReport != nil {
		out.BlockingReportId = res.BlockingReport.ReportID.String()
		out.BlockingReportDate = res.BlockingReport.ReportDate
	}
	return out, nil
}

func (s *ReportsServer) BackupEntry(ctx context.Context, req *fieldlogpb.BackupEntryRequest) (*fieldlogpb.BackupEntryResponse, error) {
	id, err := parseReportID(req.GetReportId())
	if err != nil {
		return nil, err
	}
	if req.GetEntry() == nil || strings.TrimSpace(req.GetEntry().GetLocalId()) == "" {
		return nil, common.InvalidArgumentError("entry with local_id is required")
	}
	if err := s.recon.BackupEntry(ctx, id, utils.FromPBEntry(req.GetEntry())); err != nil {
		s.logger.Error("server.reports.backup_entry_failed", "report_id", id, "error", err)
		return nil, common.InternalErrorf("backup entry: %v", err)
	}
	return &fieldlogpb.BackupEntryResponse{}, nil
}

func (s *ReportsServer) DeleteEntry(ctx context.Context, req *fieldlogpb.DeleteEntryRequest) (*fieldlogpb.DeleteEntryResponse, error) {
	id, err := parseReportID(req.GetReportId())
	if err != nil {
		return nil, err
	}
	localID := strings.TrimSpace(req.GetLocalEntryId())
	if localID == "" {
		return nil, common.InvalidArgumentError("local_entry_id is required")
	}
	if err := s.recon.DeleteEntry(ctx, id, localID); err != nil {
		s.logger.Error("server.reports.delete_entry_failed", "report_id", id, "local_entry_id", localID, "error", err)
		return nil, common.InternalErrorf("delete entry: %v", err)
	}
	return &fieldlogpb.DeleteEntryResponse{}, nil
}

// RefineReport runs the full refinement cycle: gate, move to pending_refine,
// call the webhook, apply the result, move to refined. A webhook failure
// rolls the report back to draft so the user can retry from where they were.
func (s *ReportsServer) RefineReport(ctx context.Context, req *fieldlogpb.RefineReportRequest) (*fieldlogpb.RefineReportResponse, error) {
	rep, err := s.getReport(ctx, req.GetReportId())
	if err != nil {
		return nil, err
	}
	if gate := rules.ValidateForRefinement(rep); !gate.Valid {
		return nil, common.FailedPreconditionErrorf("report not ready for refinement: %s", strings.Join(gate.Errors, "; "))
	}
	if tr := rules.CanTransition(rep.Status, constants.StatusPendingRefine); !tr.Allowed {
		return nil, common.FailedPreconditionErrorf("cannot refine: %s", tr.Reason)
	}

	rep.Status = constants.StatusPendingRefine
	if err := s.recon.SaveReport(ctx, rep); err != nil {
		return nil, common.InternalErrorf("save report: %v", err)
	}

	res, err := s.refiner.Refine(ctx, rep)
	if err != nil {
		s.logger.Error("server.reports.refine_failed", "report_id", rep.ID, "error", err)
		rep.Status = constants.StatusDraft
		if saveErr := s.recon.SaveReport(ctx, rep); saveErr != nil {
			s.logger.Error("server.reports.refine_rollback_failed", "report_id", rep.ID, "error", saveErr)
		}
		return nil, status.Errorf(codes.Unavailable, "refinement failed: %v", err)
	}

	refine.Apply(rep, res)
	rep.Status = constants.StatusRefined
	if err := s.recon.SaveReport(ctx, rep); err != nil {
		return nil, common.InternalErrorf("save refined report: %v", err)
	}
	if err := s.recon.SyncRawCapture(ctx, rep.ID); err != nil {
		s.logger.Warn("server.reports.raw_capture_sync_failed", "report_id", rep.ID, "error", err)
	}
	return &fieldlogpb.RefineReportResponse{Report: utils.ToPBReport(rep)}, nil
}

func (s *ReportsServer) SubmitReport(ctx context.Context, req *fieldlogpb.SubmitReportRequest) (*fieldlogpb.SubmitReportResponse, error) {
	rep, err := s.getReport(ctx, req.GetReportId())
	if err != nil {
		return nil, err
	}
	if gate := rules.ValidateForSubmission(rep); !gate.Valid {
		return nil, common.FailedPreconditionErrorf("report not ready for submission: %s", strings.Join(gate.Errors, "; "))
	}
	if tr := rules.CanTransition(rep.Status, constants.StatusSubmitted); !tr.Allowed {
		return nil, common.FailedPreconditionErrorf("cannot submit: %s", tr.Reason)
	}
	rep.Status = constants.StatusSubmitted
	if err := s.recon.SaveReport(ctx, rep); err != nil {
		s.logger.Error("server.reports.submit_save_failed", "report_id", rep.ID, "error", err)
		return nil, common.InternalErrorf("save submission: %v", err)
	}
	s.logger.Info("server.reports.submitted", "report_id", rep.ID, "project_id", rep.ProjectID, "report_date", rep.ReportDate)
	return &fieldlogpb.SubmitReportResponse{Report: utils.ToPBReport(rep)}, nil
}
