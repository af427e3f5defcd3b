package rules

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
)

func freeformDraft() *entity.Report {
	return &entity.Report{
		ID:          uuid.New(),
		ProjectID:   uuid.New(),
		ReportDate:  "2026-03-14",
		Status:      constants.StatusDraft,
		CaptureMode: constants.CaptureFreeform,
		FieldNotes: []entity.Entry{
			{LocalID: "e1", Text: "crane on site, set precast panels"},
		},
	}
}

func guidedDraft() *entity.Report {
	return &entity.Report{
		ID:          uuid.New(),
		ProjectID:   uuid.New(),
		ReportDate:  "2026-03-14",
		Status:      constants.StatusDraft,
		CaptureMode: constants.CaptureGuided,
		GuidedNotes: []entity.Entry{
			{LocalID: "e1", Section: "work", Text: "set precast panels"},
		},
		OriginalInput: &entity.OriginalInput{
			Weather: &entity.Weather{HighTemp: "54", LowTemp: "38", General: "overcast"},
		},
	}
}

func TestValidateForRefinementFreeform(t *testing.T) {
	r := freeformDraft()
	assert.True(t, ValidateForRefinement(r).Valid)

	r.FieldNotes = nil
	res := ValidateForRefinement(r)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "at least one field note is required")
}

func TestValidateForRefinementGuidedWeather(t *testing.T) {
	r := guidedDraft()
	assert.True(t, ValidateForRefinement(r).Valid)

	r.OriginalInput.Weather.General = ""
	res := ValidateForRefinement(r)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "general weather condition is required")
}

func TestValidateForRefinementUserEditSuppliesWeather(t *testing.T) {
	r := guidedDraft()
	r.OriginalInput.Weather.HighTemp = ""
	r.UserEdits = map[string]any{"overview.weather.highTemp": "57"}
	assert.True(t, ValidateForRefinement(r).Valid)
}

func TestValidateForRefinementCollectsAllErrors(t *testing.T) {
	r := &entity.Report{CaptureMode: constants.CaptureGuided}
	res := ValidateForRefinement(r)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 4)
}

func TestValidateForSubmission(t *testing.T) {
	r := freeformDraft()
	r.Status = constants.StatusRefined
	assert.True(t, ValidateForSubmission(r).Valid)

	r.ProjectID = uuid.Nil
	r.ReportDate = ""
	r.FieldNotes = nil
	res := ValidateForSubmission(r)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 3)
}
