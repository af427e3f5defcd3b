package utils

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"

	fieldlogpb "github.com/fieldlog/fieldlog/gen/proto/fieldlog/v1"
)

// ParseYMD parses a calendar date in YYYY-MM-DD form.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatYMD renders t as a calendar date in YYYY-MM-DD form.
func FormatYMD(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Today returns now truncated to midnight UTC.
func Today(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func jsonOrEmpty(v any) string {
	if v == nil {
		return ""
	}
	bs, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(bs)
}

func ToPBEntry(e entity.Entry) *fieldlogpb.Entry {
	contractorID := ""
	if e.ContractorID != nil {
		contractorID = e.ContractorID.String()
	}
	return &fieldlogpb.Entry{
		LocalId:        e.LocalID,
		RemoteId:       e.RemoteID,
		Section:        e.Section,
		Text:           e.Text,
		ContractorId:   contractorID,
		ContractorName: e.ContractorName,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromPBEntry(p *fieldlogpb.Entry) entity.Entry {
	e := entity.Entry{
		LocalID:        p.GetLocalId(),
		RemoteID:       p.GetRemoteId(),
		Section:        p.GetSection(),
		Text:           p.GetText(),
		ContractorName: p.GetContractorName(),
	}
	if id, err := uuid.Parse(p.GetContractorId()); err == nil && id != uuid.Nil {
		e.ContractorID = &id
	}
	if t, err := time.Parse(time.RFC3339, p.GetCreatedAt()); err == nil {
		e.CreatedAt = t
	}
	return e
}

func ToPBReport(r *entity.Report) *fieldlogpb.Report {
	fieldNotes := make([]*fieldlogpb.Entry, 0, len(r.FieldNotes))
	for _, e := range r.FieldNotes {
		fieldNotes = append(fieldNotes, ToPBEntry(e))
	}
	guidedNotes := make([]*fieldlogpb.Entry, 0, len(r.GuidedNotes))
	for _, e := range r.GuidedNotes {
		guidedNotes = append(guidedNotes, ToPBEntry(e))
	}
	originalInput := ""
	if r.OriginalInput != nil {
		originalInput = jsonOrEmpty(r.OriginalInput)
	}
	return &fieldlogpb.Report{
		ReportId:          r.ID.String(),
		ProjectId:         r.ProjectID.String(),
		ReportDate:        r.ReportDate,
		Status:            string(r.Status),
		CaptureMode:       string(r.CaptureMode),
		DeviceId:          r.DeviceID,
		OriginalInputJson: originalInput,
		AiGeneratedJson:   jsonOrEmpty(r.AIGenerated),
		UserEditsJson:     jsonOrEmpty(r.UserEdits),
		TogglesJson:       jsonOrEmpty(r.Toggles),
		FieldNotes:        fieldNotes,
		GuidedNotes:       guidedNotes,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
		LastSaved:         r.LastSaved.UTC().Format(time.RFC3339),
	}
}

func FromPBReport(p *fieldlogpb.Report) (*entity.Report, error) {
	id, err := uuid.Parse(p.GetReportId())
	if err != nil {
		return nil, err
	}
	projectID, err := uuid.Parse(p.GetProjectId())
	if err != nil {
		return nil, err
	}
	r := &entity.Report{
		ID:          id,
		ProjectID:   projectID,
		ReportDate:  p.GetReportDate(),
		Status:      constants.ReportStatus(p.GetStatus()),
		CaptureMode: constants.CaptureMode(p.GetCaptureMode()),
		DeviceID:    p.GetDeviceId(),
	}
	if s := p.GetOriginalInputJson(); s != "" {
		var oi entity.OriginalInput
		if err := json.Unmarshal([]byte(s), &oi); err != nil {
			return nil, err
		}
		r.OriginalInput = &oi
	}
	if s := p.GetAiGeneratedJson(); s != "" {
		if err := json.Unmarshal([]byte(s), &r.AIGenerated); err != nil {
			return nil, err
		}
	}
	if s := p.GetUserEditsJson(); s != "" {
		if err := json.Unmarshal([]byte(s), &r.UserEdits); err != nil {
			return nil, err
		}
	}
	if s := p.GetTogglesJson(); s != "" {
		if err := json.Unmarshal([]byte(s), &r.Toggles); err != nil {
			return nil, err
		}
	}
	for _, e := range p.GetFieldNotes() {
		r.FieldNotes = append(r.FieldNotes, FromPBEntry(e))
	}
	for _, e := range p.GetGuidedNotes() {
		r.GuidedNotes = append(r.GuidedNotes, FromPBEntry(e))
	}
	if t, err := time.Parse(time.RFC3339, p.GetCreatedAt()); err == nil {
		r.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, p.GetLastSaved()); err == nil {
		r.LastSaved = t
	}
	return r, nil
}

func ToPBProject(p *entity.Project) *fieldlogpb.Project {
	contractors := make([]*fieldlogpb.Contractor, 0, len(p.Contractors))
	for _, c := range p.Contractors {
		contractors = append(contractors, &fieldlogpb.Contractor{
			Id:           c.ID.String(),
			ProjectId:    c.ProjectID.String(),
			Name:         c.Name,
			Abbreviation: c.Abbreviation,
			Type:         c.Type,
			Trade:        c.Trade,
			Status:       c.Status,
		})
	}
	return &fieldlogpb.Project{
		Id:          p.ID.String(),
		Name:        p.Name,
		Status:      p.Status,
		Contractors: contractors,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
