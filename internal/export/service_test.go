package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
)

type fakeReports struct {
	submitted []entity.Report
}

func (f *fakeReports) UpsertReport(context.Context, *entity.Report) error { return nil }
func (f *fakeReports) GetByID(context.Context, uuid.UUID) (*entity.Report, error) {
	return nil, nil
}
func (f *fakeReports) GetByProjectDate(context.Context, uuid.UUID, string) (*entity.Report, error) {
	return nil, nil
}
func (f *fakeReports) ListSubmitted(context.Context, uuid.UUID) ([]entity.Report, error) {
	return f.submitted, nil
}

func TestExportArchiveXLSXDropsDefaultSheet(t *testing.T) {
	projectID := uuid.New()
	repo := &fakeReports{submitted: []entity.Report{
		{
			ID:          uuid.New(),
			ProjectID:   projectID,
			ReportDate:  "2026-03-14",
			Status:      constants.StatusSubmitted,
			CaptureMode: constants.CaptureFreeform,
			UserEdits:   map[string]any{"summary": "poured footings"},
			FieldNotes:  []entity.Entry{{LocalID: "e1", ContractorName: "Ríos Concrete", Text: "crew of six"}},
		},
	}}

	xlsx, err := NewService(repo, nil).ExportArchiveXLSX(context.Background(), projectID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Daily Reports"}, f.GetSheetList())

	got, err := f.GetCellValue("Daily Reports", "G2")
	require.NoError(t, err)
	assert.Equal(t, "poured footings", got)
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 5))
	assert.Equal(t, "héll…", truncate("héllo world", 5))
	assert.Equal(t, "Ríos Concr…", truncate("Ríos Concrete y Asociados", 11))
	assert.Equal(t, "no limit", truncate("no limit", 0))
	assert.Equal(t, "日", truncate("日本語", 1))
	// Output is always valid UTF-8, never a split sequence.
	for n := 1; n < 8; n++ {
		out := truncate("año después", n)
		assert.True(t, bytes.Equal([]byte(out), []byte(string([]rune(out)))))
	}
}
