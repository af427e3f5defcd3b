package rules

import (
	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
)

// IsEditable reports whether a report accepts user edits: only draft and
// refined are human-editing states; pending_refine is in flight and
// submitted is final.
func IsEditable(status constants.ReportStatus) bool {
	return status == constants.StatusDraft || status == constants.StatusRefined
}

// CanReturnToNotes reports whether the raw-capture surface may reopen. Once
// the AI has seen the data the raw capture is locked out, so only draft
// qualifies.
func CanReturnToNotes(status constants.ReportStatus) bool {
	return status == constants.StatusDraft
}

// SwitchModeResult is the answer to "may this report change capture mode".
type SwitchModeResult struct {
	Allowed           bool   `json:"allowed"`
	Reason            string `json:"reason,omitempty"`
	RequiresMigration bool   `json:"requiresMigration"`
}

// Switch-mode rejection reasons.
const (
	ReasonNotDraft       = "NOT_DRAFT"
	ReasonEntriesSynced  = "ENTRIES_ALREADY_SYNCED"
)

// CanSwitchCaptureMode reports whether the report may switch between freeform
// and guided capture. Only draft reports qualify, and only while no entry
// carries a remote identifier; once anything has synced the mode is frozen.
// RequiresMigration tells the caller whether local entries exist that would
// need converting.
func CanSwitchCaptureMode(r *entity.Report) SwitchModeResult {
	if r.Status != constants.StatusDraft {
		return SwitchModeResult{Reason: ReasonNotDraft}
	}
	if r.HasSyncedEntries() {
		return SwitchModeResult{Reason: ReasonEntriesSynced}
	}
	return SwitchModeResult{
		Allowed:           true,
		RequiresMigration: len(r.Entries()) > 0,
	}
}
