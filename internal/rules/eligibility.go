package rules

import (
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
	"github.com/fieldlog/fieldlog/internal/utils"
)

// EligibilityResult is admission control for starting a new report on a
// project. BlockingReport names the report behind a rejection or redirect.
type EligibilityResult struct {
	Allowed        bool                        `json:"allowed"`
	Reason         constants.EligibilityReason `json:"reason"`
	BlockingReport *entity.ReportRef           `json:"blockingReport,omitempty"`
}

// CanStartNewReport classifies a project's locally known reports against
// "today". Check order is significant: an unfinished previous-day report
// outranks anything dated today, because a late report is the more urgent
// obligation.
func CanStartNewReport(reports []entity.ReportRef, projectID uuid.UUID, today time.Time) EligibilityResult {
	day := utils.Today(today)

	var submittedToday, openToday *entity.ReportRef
	for i := range reports {
		ref := &reports[i]
		if ref.ProjectID != projectID {
			continue
		}
		date, err := utils.ParseYMD(ref.ReportDate)
		if err != nil {
			continue
		}

		if date.Before(day) && ref.Status != constants.StatusSubmitted {
			return EligibilityResult{
				Reason:         constants.EligibilityUnfinishedPrevious,
				BlockingReport: ref,
			}
		}
		if date.Equal(day) {
			if ref.Status == constants.StatusSubmitted {
				submittedToday = ref
			} else {
				openToday = ref
			}
		}
	}

	if submittedToday != nil {
		return EligibilityResult{
			Reason:         constants.EligibilityAlreadySubmittedToday,
			BlockingReport: submittedToday,
		}
	}
	if openToday != nil {
		return EligibilityResult{
			Allowed:        true,
			Reason:         constants.EligibilityContinueExisting,
			BlockingReport: openToday,
		}
	}
	return EligibilityResult{Allowed: true, Reason: constants.EligibilityOK}
}
