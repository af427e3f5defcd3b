package rules

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
)

var eligibilityToday = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func ref(projectID uuid.UUID, date string, status constants.ReportStatus) entity.ReportRef {
	return entity.ReportRef{
		ReportID:   uuid.New(),
		ProjectID:  projectID,
		ReportDate: date,
		Status:     status,
	}
}

func TestCanStartNewReportEmptyProject(t *testing.T) {
	projectID := uuid.New()
	res := CanStartNewReport(nil, projectID, eligibilityToday)
	assert.True(t, res.Allowed)
	assert.Equal(t, constants.EligibilityOK, res.Reason)
	assert.Nil(t, res.BlockingReport)
}

func TestCanStartNewReportUnfinishedPreviousBlocks(t *testing.T) {
	projectID := uuid.New()
	reports := []entity.ReportRef{
		ref(projectID, "2026-03-12", constants.StatusSubmitted),
		ref(projectID, "2026-03-13", constants.StatusDraft),
	}
	res := CanStartNewReport(reports, projectID, eligibilityToday)
	assert.False(t, res.Allowed)
	assert.Equal(t, constants.EligibilityUnfinishedPrevious, res.Reason)
	require.NotNil(t, res.BlockingReport)
	assert.Equal(t, "2026-03-13", res.BlockingReport.ReportDate)
}

func TestCanStartNewReportUnfinishedPreviousOutranksToday(t *testing.T) {
	// A stale draft from yesterday wins over both of today's rows.
	projectID := uuid.New()
	reports := []entity.ReportRef{
		ref(projectID, "2026-03-14", constants.StatusSubmitted),
		ref(projectID, "2026-03-13", constants.StatusRefined),
	}
	res := CanStartNewReport(reports, projectID, eligibilityToday)
	assert.Equal(t, constants.EligibilityUnfinishedPrevious, res.Reason)
	require.NotNil(t, res.BlockingReport)
	assert.Equal(t, "2026-03-13", res.BlockingReport.ReportDate)
}

func TestCanStartNewReportAlreadySubmittedToday(t *testing.T) {
	projectID := uuid.New()
	reports := []entity.ReportRef{
		ref(projectID, "2026-03-14", constants.StatusSubmitted),
	}
	res := CanStartNewReport(reports, projectID, eligibilityToday)
	assert.False(t, res.Allowed)
	assert.Equal(t, constants.EligibilityAlreadySubmittedToday, res.Reason)
}

func TestCanStartNewReportContinueExisting(t *testing.T) {
	projectID := uuid.New()
	open := ref(projectID, "2026-03-14", constants.StatusDraft)
	res := CanStartNewReport([]entity.ReportRef{open}, projectID, eligibilityToday)
	assert.True(t, res.Allowed)
	assert.Equal(t, constants.EligibilityContinueExisting, res.Reason)
	require.NotNil(t, res.BlockingReport)
	assert.Equal(t, open.ReportID, res.BlockingReport.ReportID)
}

func TestCanStartNewReportSubmittedTodayOutranksOpenToday(t *testing.T) {
	projectID := uuid.New()
	reports := []entity.ReportRef{
		ref(projectID, "2026-03-14", constants.StatusDraft),
		ref(projectID, "2026-03-14", constants.StatusSubmitted),
	}
	res := CanStartNewReport(reports, projectID, eligibilityToday)
	assert.False(t, res.Allowed)
	assert.Equal(t, constants.EligibilityAlreadySubmittedToday, res.Reason)
}

func TestCanStartNewReportIgnoresOtherProjects(t *testing.T) {
	projectID := uuid.New()
	other := uuid.New()
	reports := []entity.ReportRef{
		ref(other, "2026-03-13", constants.StatusDraft),
		ref(other, "2026-03-14", constants.StatusSubmitted),
	}
	res := CanStartNewReport(reports, projectID, eligibilityToday)
	assert.True(t, res.Allowed)
	assert.Equal(t, constants.EligibilityOK, res.Reason)
}

func TestCanStartNewReportSkipsMalformedDates(t *testing.T) {
	projectID := uuid.New()
	reports := []entity.ReportRef{
		ref(projectID, "not-a-date", constants.StatusDraft),
	}
	res := CanStartNewReport(reports, projectID, eligibilityToday)
	assert.True(t, res.Allowed)
	assert.Equal(t, constants.EligibilityOK, res.Reason)
}
