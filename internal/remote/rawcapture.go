package remote

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/gen/ent"
	"github.com/fieldlog/fieldlog/gen/ent/reportrawcapture"
)

type RawCaptureRepository interface {
	// Replace deletes the report's raw-capture row and inserts the new one.
	// One row per report; the table contract is delete-and-reinsert, never a
	// patch.
	Replace(ctx context.Context, reportID uuid.UUID, captureMode string, payload map[string]any) error
}

type rawCaptureRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRawCaptureRepository(client *ent.Client, logger *slog.Logger) RawCaptureRepository {
	return &rawCaptureRepository{client: client, logger: logger}
}

func (r *rawCaptureRepository) Replace(ctx context.Context, reportID uuid.UUID, captureMode string, payload map[string]any) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return classify("raw capture tx", err)
	}

	_, err = tx.ReportRawCapture.Delete().
		Where(reportrawcapture.ReportID(reportID)).
		Exec(ctx)
	if err == nil {
		err = tx.ReportRawCapture.Create().
			SetReportID(reportID).
			SetCaptureMode(captureMode).
			SetPayload(payload).
			Exec(ctx)
	}
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("remote.rawcapture.replace_failed", "report_id", reportID, "error", err)
		return classify("replace raw capture", err)
	}
	if err := tx.Commit(); err != nil {
		return classify("raw capture commit", err)
	}
	return nil
}
