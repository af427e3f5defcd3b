package refine

import (
	"encoding/json"
	"errors"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
)

// Result is the normalized refinement outcome. The webhook answers in one of
// two shapes, the current {success, captureMode, originalInput, refinedReport}
// or the legacy {aiGenerated}, and this adapter translates both at the
// boundary so nothing downstream ever sees the legacy shape.
type Result struct {
	AIGenerated   map[string]any
	OriginalInput *entity.OriginalInput
	CaptureMode   constants.CaptureMode
}

type modernResponse struct {
	Success       bool                  `json:"success"`
	CaptureMode   string                `json:"captureMode"`
	OriginalInput *entity.OriginalInput `json:"originalInput"`
	RefinedReport map[string]any        `json:"refinedReport"`
}

type legacyResponse struct {
	AIGenerated map[string]any `json:"aiGenerated"`
}

var errEmptyResponse = errors.New("response carries neither refinedReport nor aiGenerated")

// adaptResponse normalizes either response shape into a Result. The legacy
// shape populates only AIGenerated and leaves originalInput and captureMode
// untouched (zero values mean "keep what the report already has").
func adaptResponse(raw []byte) (*Result, error) {
	var modern modernResponse
	if err := json.Unmarshal(raw, &modern); err == nil && modern.RefinedReport != nil {
		if !modern.Success {
			return nil, errors.New("webhook reported failure")
		}
		return &Result{
			AIGenerated:   modern.RefinedReport,
			OriginalInput: modern.OriginalInput,
			CaptureMode:   constants.CaptureMode(modern.CaptureMode),
		}, nil
	}

	var legacy legacyResponse
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, err
	}
	if legacy.AIGenerated == nil {
		return nil, errEmptyResponse
	}
	return &Result{AIGenerated: legacy.AIGenerated}, nil
}

// Apply merges a refinement result into the report: the AI document is
// replaced wholesale (one write per refinement cycle), the original-input
// snapshot and capture mode only move when the modern shape supplied them.
func Apply(rep *entity.Report, res *Result) {
	rep.AIGenerated = res.AIGenerated
	if res.OriginalInput != nil {
		rep.OriginalInput = res.OriginalInput
	}
	if res.CaptureMode != "" {
		rep.CaptureMode = res.CaptureMode
	}
}
