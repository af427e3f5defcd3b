package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
)

// Report is the central aggregate for data transfer between layers. The three
// layered payloads (UserEdits > AIGenerated > the report's own derived
// fields) are merged per field by the resolver; only UserEdits is mutated
// interactively.
type Report struct {
	ID          uuid.UUID              `json:"reportId"`
	ProjectID   uuid.UUID              `json:"projectId"`
	ReportDate  string                 `json:"reportDate"` // calendar date, YYYY-MM-DD
	Status      constants.ReportStatus `json:"status"`
	CaptureMode constants.CaptureMode  `json:"captureMode"`

	// DeviceID is the identity of the device that authored the report; the
	// remote row records the last writer.
	DeviceID string `json:"deviceId,omitempty"`

	// OriginalInput is the immutable snapshot sent for refinement. Written
	// once, never user-edited.
	OriginalInput *OriginalInput `json:"originalInput,omitempty"`

	// AIGenerated is the refinement output as a dot-path-addressable document.
	// Nil before the first refinement cycle. Legacy webhook shapes are
	// normalized into this document at the refine boundary.
	AIGenerated map[string]any `json:"aiGenerated,omitempty"`

	// UserEdits maps dot-path field identifiers (e.g.
	// "overview.weather.highTemp", "activity_<contractorId>") to user-entered
	// values. This is the unit of durability for autosave.
	UserEdits map[string]any `json:"userEdits,omitempty"`

	// Toggles holds per-section yes/no sign-offs. A toggle is write-once: nil
	// means unset, a set value is permanently locked for the report.
	Toggles map[string]*bool `json:"toggles,omitempty"`

	// Derived/legacy payloads: the lowest-priority resolution tier and the
	// literal shapes pushed to the remote store's normalized tables.
	FieldNotes  []Entry          `json:"fieldNotes,omitempty"`
	GuidedNotes []Entry          `json:"guidedNotes,omitempty"`
	Activities  map[string]any   `json:"activities,omitempty"`
	Operations  map[string]any   `json:"operations,omitempty"`
	Equipment   []EquipmentRow   `json:"equipment,omitempty"`
	Photos      []Photo          `json:"photos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	LastSaved time.Time `json:"lastSaved"`
}

// Entries returns the capture entries for the report's current mode.
func (r *Report) Entries() []Entry {
	if r.CaptureMode == constants.CaptureGuided {
		return r.GuidedNotes
	}
	return r.FieldNotes
}

// HasSyncedEntries reports whether any entry carries a remote identifier.
// Once true, the report's capture mode is frozen.
func (r *Report) HasSyncedEntries() bool {
	for _, e := range r.FieldNotes {
		if e.RemoteID != "" {
			return true
		}
	}
	for _, e := range r.GuidedNotes {
		if e.RemoteID != "" {
			return true
		}
	}
	return false
}

// Document renders the report as a generic dot-path-addressable document for
// the lowest resolution tier. Round-trips through JSON so the field names
// seen by the resolver match the persisted shape.
func (r *Report) Document() map[string]any {
	bs, err := json.Marshal(r)
	if err != nil {
		return map[string]any{}
	}
	var doc map[string]any
	if err := json.Unmarshal(bs, &doc); err != nil {
		return map[string]any{}
	}
	return doc
}
