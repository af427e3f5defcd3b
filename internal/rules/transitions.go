// Package rules is the report lifecycle state machine and its derived
// permissions: status transitions, edit-ability, toggle locks, validation
// gates, and new-report admission control. Everything here is a pure function
// of report state; storage and sync live elsewhere.
package rules

import (
	"github.com/fieldlog/fieldlog/constants"
)

// TransitionResult reports whether a status transition is allowed, with a
// named reason when it is not.
type TransitionResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// CanTransition validates moving a report from current to target status. The
// lifecycle is strictly forward, one step at a time; staying in place is a
// permitted no-op.
func CanTransition(current, target constants.ReportStatus) TransitionResult {
	ci := constants.StatusIndex(current)
	if ci < 0 {
		return TransitionResult{Reason: constants.ReasonInvalidCurrentStatus}
	}
	ti := constants.StatusIndex(target)
	if ti < 0 {
		return TransitionResult{Reason: constants.ReasonInvalidTargetStatus}
	}

	switch {
	case ti == ci || ti == ci+1:
		return TransitionResult{Allowed: true}
	case ti < ci:
		return TransitionResult{Reason: constants.ReasonCannotGoBackwards}
	default:
		return TransitionResult{Reason: constants.ReasonCannotSkipSteps}
	}
}
