package entity

import (
	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
)

// ReportRef is the slim row kept in the current-reports index, keyed by
// project+date. Listing, drafts, and eligibility scans read these instead of
// full report records.
type ReportRef struct {
	ReportID   uuid.UUID              `json:"reportId"`
	ProjectID  uuid.UUID              `json:"projectId"`
	ReportDate string                 `json:"reportDate"`
	Status     constants.ReportStatus `json:"status"`
}

// Ref returns the report's index row.
func (r *Report) Ref() ReportRef {
	return ReportRef{
		ReportID:   r.ID,
		ProjectID:  r.ProjectID,
		ReportDate: r.ReportDate,
		Status:     r.Status,
	}
}
