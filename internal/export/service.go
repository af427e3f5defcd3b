package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/fieldlog/fieldlog/internal/entity"
	"github.com/fieldlog/fieldlog/internal/remote"
	"github.com/fieldlog/fieldlog/internal/resolve"
)

// Service produces XLSX bytes summarizing a project's submitted reports.
type Service struct {
	reports remote.ReportRepository
	logger  *slog.Logger
}

func NewService(reports remote.ReportRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reports: reports, logger: logger}
}

// ExportArchiveXLSX returns an XLSX workbook (as bytes) with one row per
// submitted report for the project. Field values go through the same layered
// resolution the review screens use, so the export matches what was reviewed.
func (s *Service) ExportArchiveXLSX(ctx context.Context, projectID uuid.UUID) ([]byte, error) {
	start := time.Now()

	reps, err := s.reports.ListSubmitted(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("query submitted reports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Daily Reports"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the workbook's default sheet.
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Report Date",
		"Status",
		"Capture Mode",
		"Weather",
		"High Temp",
		"Low Temp",
		"Work Summary",
		"Issues / Delays",
		"Entries",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i := range reps {
		rep := &reps[i]
		src := resolve.Sources{
			UserEdits: rep.UserEdits,
			AI:        rep.AIGenerated,
			Report:    rep.Document(),
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, rep.ReportDate)
		write(2, string(rep.Status))
		write(3, string(rep.CaptureMode))
		write(4, resolve.Text(src, resolve.Field{
			Path:   "overview.weather.general",
			AIPath: "overview.weather.general",
		}))
		write(5, resolve.Text(src, resolve.Field{
			Path:   "overview.weather.highTemp",
			AIPath: "overview.weather.highTemp",
		}))
		write(6, resolve.Text(src, resolve.Field{
			Path:   "overview.weather.lowTemp",
			AIPath: "overview.weather.lowTemp",
		}))
		write(7, truncate(resolve.Text(src, resolve.Field{
			Path:         "summary",
			AIPath:       "work_summary",
			LegacyAIPath: "summary",
		}), 140))
		write(8, truncate(resolve.Text(src, resolve.Field{
			Path:         "issues",
			AIPath:       "issues_delays",
			LegacyAIPath: "issues",
		}), 140))
		write(9, entryText(rep.Entries()))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "C", 14) // status, mode
	_ = f.SetColWidth(sheet, "D", "F", 16) // weather
	_ = f.SetColWidth(sheet, "G", "H", 48) // summary, issues
	_ = f.SetColWidth(sheet, "I", "I", 60) // entries

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"project_id", projectID.String(),
		"rows", len(reps),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func entryText(entries []entity.Entry) string {
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += "\n"
		}
		if e.ContractorName != "" {
			out += e.ContractorName + ": "
		}
		out += e.Text
	}
	return out
}

// truncate caps s at n runes, never splitting a multibyte sequence.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
