package constants

// ReportStatus is the canonical lifecycle status for rows in reports.
type ReportStatus string

// Stable values (store these exact strings in the DB and local cache).
const (
	StatusDraft         ReportStatus = "draft"          // raw capture, human-editable
	StatusPendingRefine ReportStatus = "pending_refine" // sent for AI refinement, read-only
	StatusRefined       ReportStatus = "refined"        // refinement applied, human-editable
	StatusSubmitted     ReportStatus = "submitted"      // final, read-only
)

// StatusOrder is the forward lifecycle sequence. Transitions may only move
// zero or one step to the right.
var StatusOrder = []ReportStatus{
	StatusDraft,
	StatusPendingRefine,
	StatusRefined,
	StatusSubmitted,
}

// StatusIndex returns the position of s in the lifecycle, or -1 for an
// unknown status.
func StatusIndex(s ReportStatus) int {
	for i, v := range StatusOrder {
		if v == s {
			return i
		}
	}
	return -1
}
