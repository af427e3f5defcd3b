package remote

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/gen/ent"
	"github.com/fieldlog/fieldlog/gen/ent/reportentry"
	"github.com/fieldlog/fieldlog/internal/entity"
)

type EntryRepository interface {
	// UpsertEntry writes one captured entry keyed on (report, local entry id)
	// and returns the remote row id. Replays resolve in place.
	UpsertEntry(ctx context.Context, reportID uuid.UUID, e entity.Entry) (string, error)
	DeleteEntry(ctx context.Context, reportID uuid.UUID, localEntryID string) error
}

type entryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEntryRepository(client *ent.Client, logger *slog.Logger) EntryRepository {
	return &entryRepository{client: client, logger: logger}
}

func (r *entryRepository) UpsertEntry(ctx context.Context, reportID uuid.UUID, e entity.Entry) (string, error) {
	create := r.client.ReportEntry.Create().
		SetReportID(reportID).
		SetLocalEntryID(e.LocalID).
		SetSection(e.Section).
		SetBody(e.Text).
		SetContractorName(e.ContractorName).
		SetCapturedAt(e.CreatedAt)
	if e.ContractorID != nil {
		create = create.SetContractorID(*e.ContractorID)
	}

	id, err := create.
		OnConflictColumns(reportentry.FieldReportID, reportentry.FieldLocalEntryID).
		Update(func(u *ent.ReportEntryUpsert) {
			u.UpdateSection()
			u.UpdateBody()
			u.UpdateContractorName()
			u.UpdateCapturedAt()
		}).
		ID(ctx)
	if err != nil {
		r.logger.Error("remote.entries.upsert_failed",
			"report_id", reportID, "local_entry_id", e.LocalID, "error", err)
		return "", classify("upsert entry", err)
	}
	return id.String(), nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, reportID uuid.UUID, localEntryID string) error {
	_, err := r.client.ReportEntry.Delete().
		Where(
			reportentry.ReportID(reportID),
			reportentry.LocalEntryID(localEntryID),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("remote.entries.delete_failed",
			"report_id", reportID, "local_entry_id", localEntryID, "error", err)
		return classify("delete entry", err)
	}
	return nil
}

func toEntry(row *ent.ReportEntry) entity.Entry {
	e := entity.Entry{
		LocalID:        row.LocalEntryID,
		RemoteID:       row.ID.String(),
		Section:        row.Section,
		Text:           row.Body,
		ContractorName: row.ContractorName,
		CreatedAt:      row.CapturedAt,
	}
	if row.ContractorID != nil {
		id := *row.ContractorID
		e.ContractorID = &id
	}
	return e
}
