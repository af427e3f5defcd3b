package localstore

import (
	"errors"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/internal/entity"
)

// SaveReport persists the full report record and refreshes its row in the
// current-reports index. Local writes are synchronous so no edit is ever lost
// to a crash.
func (s *Store) SaveReport(r *entity.Report) error {
	if err := s.setJSON(reportKey(r.ID), r); err != nil {
		return err
	}
	return s.setJSON(currentReportKey(r.ProjectID, r.ReportDate), r.Ref())
}

// GetReport returns the report record, or nil if none is cached locally.
func (s *Store) GetReport(reportID uuid.UUID) (*entity.Report, error) {
	var r entity.Report
	err := s.getJSON(reportKey(reportID), &r)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteReport removes the record and its index row.
func (s *Store) DeleteReport(r *entity.Report) error {
	if err := s.delete(reportKey(r.ID)); err != nil {
		return err
	}
	return s.delete(currentReportKey(r.ProjectID, r.ReportDate))
}

// ListCurrentReports returns the index rows for one project, in date order
// (key order is date order within the project prefix).
func (s *Store) ListCurrentReports(projectID uuid.UUID) ([]entity.ReportRef, error) {
	return scanJSON[entity.ReportRef](s, currentReportPrefix(projectID))
}

// GetCurrentReport returns the index row for one (project, date), or nil.
func (s *Store) GetCurrentReport(projectID uuid.UUID, reportDate string) (*entity.ReportRef, error) {
	var ref entity.ReportRef
	err := s.getJSON(currentReportKey(projectID, reportDate), &ref)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// SaveProjects caches the project roster.
func (s *Store) SaveProjects(projects []entity.Project) error {
	for i := range projects {
		if err := s.setJSON(projectKey(projects[i].ID), &projects[i]); err != nil {
			return err
		}
	}
	return nil
}

// ListProjects returns all cached projects.
func (s *Store) ListProjects() ([]entity.Project, error) {
	return scanJSON[entity.Project](s, prefixProject)
}

// ClearProjects empties the project bucket. Callers only do this after a
// confirmed non-empty remote fetch.
func (s *Store) ClearProjects() error {
	return s.deletePrefix(prefixProject)
}

// SaveArchives caches submitted reports for a project.
func (s *Store) SaveArchives(projectID uuid.UUID, reports []entity.Report) error {
	for i := range reports {
		if err := s.setJSON(archiveKey(projectID, reports[i].ID), &reports[i]); err != nil {
			return err
		}
	}
	return nil
}

// ListArchives returns the cached archive bucket for a project.
func (s *Store) ListArchives(projectID uuid.UUID) ([]entity.Report, error) {
	return scanJSON[entity.Report](s, archivePrefix(projectID))
}

// ClearArchives empties a project's archive bucket.
func (s *Store) ClearArchives(projectID uuid.UUID) error {
	return s.deletePrefix(archivePrefix(projectID))
}
