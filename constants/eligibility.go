package constants

// EligibilityReason classifies whether a project can start a new report today.
type EligibilityReason string

const (
	// EligibilityOK means a fresh report may be started.
	EligibilityOK EligibilityReason = "OK"
	// EligibilityUnfinishedPrevious means a non-submitted report from an
	// earlier day blocks new work. Checked first: a late report is the more
	// urgent obligation than anything dated today.
	EligibilityUnfinishedPrevious EligibilityReason = "UNFINISHED_PREVIOUS"
	// EligibilityAlreadySubmittedToday means today's report is already
	// submitted; a second one for the same day is not allowed.
	EligibilityAlreadySubmittedToday EligibilityReason = "ALREADY_SUBMITTED_TODAY"
	// EligibilityContinueExisting means a non-submitted report dated today
	// exists; the caller should route into it instead of creating a duplicate.
	EligibilityContinueExisting EligibilityReason = "CONTINUE_EXISTING"
)

// Transition rejection reasons returned by the lifecycle state machine.
const (
	ReasonCannotGoBackwards    = "CANNOT_GO_BACKWARDS"
	ReasonCannotSkipSteps      = "CANNOT_SKIP_STEPS"
	ReasonInvalidCurrentStatus = "INVALID_CURRENT_STATUS"
	ReasonInvalidTargetStatus  = "INVALID_TARGET_STATUS"
)
