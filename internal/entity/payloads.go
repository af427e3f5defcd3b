package entity

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one atomic piece of captured field data: a note tied to a section
// and timestamp. LocalID is the client-generated id used as the idempotent
// upsert key; RemoteID is set once the entry has been accepted by the remote
// store.
type Entry struct {
	LocalID        string     `json:"localId"`
	RemoteID       string     `json:"remoteId,omitempty"`
	Section        string     `json:"section"`
	Text           string     `json:"text"`
	ContractorID   *uuid.UUID `json:"contractorId,omitempty"`
	ContractorName string     `json:"contractorName,omitempty"` // freeform capture carries names, not ids
	CreatedAt      time.Time  `json:"createdAt"`
}

// Weather is the guided-mode weather block. Values are strings as entered;
// validation only requires presence, not parseability.
type Weather struct {
	HighTemp  string `json:"highTemp"`
	LowTemp   string `json:"lowTemp"`
	General   string `json:"general"`
	Precip    string `json:"precip,omitempty"`
	WindSpeed string `json:"windSpeed,omitempty"`
}

// ContractorOperation is a per-contractor operations row (personnel counts
// and a description of the day's operations).
type ContractorOperation struct {
	ContractorID   *uuid.UUID `json:"contractorId,omitempty"`
	ContractorName string     `json:"contractorName,omitempty"`
	Description    string     `json:"description"`
	Workers        int        `json:"workers"`
	Supervisors    int        `json:"supervisors"`
}

// EquipmentRow is one equipment line item.
type EquipmentRow struct {
	ContractorID   *uuid.UUID `json:"contractorId,omitempty"`
	ContractorName string     `json:"contractorName,omitempty"`
	Description    string     `json:"description"`
	Quantity       int        `json:"quantity"`
	HoursUsed      float64    `json:"hoursUsed,omitempty"`
	HoursIdle      float64    `json:"hoursIdle,omitempty"`
}

// Photo is photo metadata only; capture, compression and GPS acquisition are
// outside the core.
type Photo struct {
	LocalID   string    `json:"localId"`
	RemoteID  string    `json:"remoteId,omitempty"`
	Caption   string    `json:"caption,omitempty"`
	StorePath string    `json:"storePath,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	TakenAt   time.Time `json:"takenAt"`
}

// OriginalInput is the immutable snapshot of what was sent for refinement.
type OriginalInput struct {
	Entries    []Entry               `json:"entries,omitempty"`
	Operations []ContractorOperation `json:"operations,omitempty"`
	Equipment  []EquipmentRow        `json:"equipment,omitempty"`
	Weather    *Weather              `json:"weather,omitempty"`
	Safety     map[string]bool       `json:"safety,omitempty"`
}
