package rules

import (
	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
)

// ValidationResult is a structured gate outcome. Gates collect every
// violation instead of stopping at the first, so the caller can render all of
// them at once; they never panic or return an error.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func result(errs []string) ValidationResult {
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateForRefinement is the gate before sending a report to the AI:
// at least one mode-appropriate content entry, and for guided capture the
// weather high/low and general condition must be present.
func ValidateForRefinement(r *entity.Report) ValidationResult {
	var errs []string

	if len(r.Entries()) == 0 {
		if r.CaptureMode == constants.CaptureGuided {
			errs = append(errs, "at least one guided entry is required")
		} else {
			errs = append(errs, "at least one field note is required")
		}
	}

	if r.CaptureMode == constants.CaptureGuided {
		if weatherField(r, "highTemp") == "" {
			errs = append(errs, "weather high temperature is required")
		}
		if weatherField(r, "lowTemp") == "" {
			errs = append(errs, "weather low temperature is required")
		}
		if weatherField(r, "general") == "" {
			errs = append(errs, "general weather condition is required")
		}
	}

	return result(errs)
}

// ValidateForSubmission is the gate before final submission: project id,
// report date, and mode-appropriate entries must all be present.
func ValidateForSubmission(r *entity.Report) ValidationResult {
	var errs []string

	if r.ProjectID == uuid.Nil {
		errs = append(errs, "project id is required")
	}
	if r.ReportDate == "" {
		errs = append(errs, "report date is required")
	}
	if len(r.Entries()) == 0 {
		if r.CaptureMode == constants.CaptureGuided {
			errs = append(errs, "at least one guided entry is required")
		} else {
			errs = append(errs, "at least one field note is required")
		}
	}

	return result(errs)
}

// weatherField reads one weather value from the working capture: the user's
// edit under the overview path wins, then the captured snapshot.
func weatherField(r *entity.Report, key string) string {
	if v, ok := r.UserEdits["overview.weather."+key].(string); ok && v != "" {
		return v
	}
	if r.OriginalInput == nil || r.OriginalInput.Weather == nil {
		return ""
	}
	w := r.OriginalInput.Weather
	switch key {
	case "highTemp":
		return w.HighTemp
	case "lowTemp":
		return w.LowTemp
	case "general":
		return w.General
	}
	return ""
}
