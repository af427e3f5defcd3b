package remote

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/gen/ent"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/fieldlog/fieldlog/internal/entity"
	"github.com/fieldlog/fieldlog/internal/utils"
)

type ReportRepository interface {
	// UpsertReport writes the report row keyed on (project, date). Retries
	// never create duplicates; the conflict target resolves them in place.
	UpsertReport(ctx context.Context, rep *entity.Report) error
	GetByID(ctx context.Context, reportID uuid.UUID) (*entity.Report, error)
	GetByProjectDate(ctx context.Context, projectID uuid.UUID, reportDate string) (*entity.Report, error)
	ListSubmitted(ctx context.Context, projectID uuid.UUID) ([]entity.Report, error)
}

type reportRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReportRepository(client *ent.Client, logger *slog.Logger) ReportRepository {
	return &reportRepository{client: client, logger: logger}
}

func (r *reportRepository) UpsertReport(ctx context.Context, rep *entity.Report) error {
	date, err := utils.ParseYMD(rep.ReportDate)
	if err != nil {
		return err
	}

	err = r.client.Report.Create().
		SetID(rep.ID).
		SetProjectID(rep.ProjectID).
		SetReportDate(date).
		SetStatus(string(rep.Status)).
		SetCaptureMode(string(rep.CaptureMode)).
		SetDeviceID(rep.DeviceID).
		SetOriginalInput(toDoc(rep.OriginalInput)).
		SetAiGenerated(rep.AIGenerated).
		SetUserEdits(rep.UserEdits).
		SetToggles(toDoc(rep.Toggles)).
		SetLastSaved(rep.LastSaved).
		OnConflictColumns(report.FieldProjectID, report.FieldReportDate).
		Update(func(u *ent.ReportUpsert) {
			u.UpdateStatus()
			u.UpdateCaptureMode()
			u.UpdateDeviceID()
			u.UpdateOriginalInput()
			u.UpdateAiGenerated()
			u.UpdateUserEdits()
			u.UpdateToggles()
			u.UpdateLastSaved()
		}).
		Exec(ctx)
	if err != nil {
		r.logger.Error("remote.reports.upsert_failed", "report_id", rep.ID, "error", err)
		return classify("upsert report", err)
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, reportID uuid.UUID) (*entity.Report, error) {
	row, err := r.client.Report.Query().
		Where(report.ID(reportID)).
		WithEntries().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get report", err)
	}
	rep := toReport(row)
	return &rep, nil
}

func (r *reportRepository) GetByProjectDate(ctx context.Context, projectID uuid.UUID, reportDate string) (*entity.Report, error) {
	date, err := utils.ParseYMD(reportDate)
	if err != nil {
		return nil, err
	}
	row, err := r.client.Report.Query().
		Where(report.ProjectID(projectID), report.ReportDateEQ(date)).
		WithEntries().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get report", err)
	}
	rep := toReport(row)
	return &rep, nil
}

func (r *reportRepository) ListSubmitted(ctx context.Context, projectID uuid.UUID) ([]entity.Report, error) {
	rows, err := r.client.Report.Query().
		Where(report.ProjectID(projectID), report.StatusEQ(string(constants.StatusSubmitted))).
		WithEntries().
		Order(report.ByReportDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("remote.reports.list_submitted_failed", "project_id", projectID, "error", err)
		return nil, classify("list submitted reports", err)
	}
	out := make([]entity.Report, len(rows))
	for i, row := range rows {
		out[i] = toReport(row)
	}
	return out, nil
}

func toReport(row *ent.Report) entity.Report {
	rep := entity.Report{
		ID:          row.ID,
		ProjectID:   row.ProjectID,
		ReportDate:  utils.FormatYMD(row.ReportDate),
		Status:      constants.ReportStatus(row.Status),
		CaptureMode: constants.CaptureMode(row.CaptureMode),
		DeviceID:    row.DeviceID,
		AIGenerated: row.AiGenerated,
		UserEdits:   row.UserEdits,
		CreatedAt:   row.CreatedAt,
		LastSaved:   row.LastSaved,
	}
	if len(row.OriginalInput) > 0 {
		var oi entity.OriginalInput
		if fromDoc(row.OriginalInput, &oi) == nil {
			rep.OriginalInput = &oi
		}
	}
	if len(row.Toggles) > 0 {
		var tg map[string]*bool
		if fromDoc(row.Toggles, &tg) == nil {
			rep.Toggles = tg
		}
	}
	for _, e := range row.Edges.Entries {
		entry := toEntry(e)
		if rep.CaptureMode == constants.CaptureGuided {
			rep.GuidedNotes = append(rep.GuidedNotes, entry)
		} else {
			rep.FieldNotes = append(rep.FieldNotes, entry)
		}
	}
	return rep
}

// toDoc renders a typed payload as the generic JSON document stored in the
// row's JSON column.
func toDoc(v any) map[string]any {
	if v == nil {
		return nil
	}
	bs, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var doc map[string]any
	if json.Unmarshal(bs, &doc) != nil {
		return nil
	}
	return doc
}

func fromDoc(doc map[string]any, out any) error {
	bs, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(bs, out)
}
