package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is a read-only input to the core; projects are created and edited
// out of scope.
type Project struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Status      string         `json:"status"` // active | inactive
	Contractors []Contractor   `json:"contractors,omitempty"`
	Equipment   []EquipmentRow `json:"equipment,omitempty"` // equipment defaults
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Contractor is referenced by id from report sub-entities. Freeform capture
// may instead carry a denormalized name with a nil id, resolved by
// case-insensitive exact match against the roster.
type Contractor struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation,omitempty"`
	Type         string    `json:"type"` // prime | sub
	Trade        string    `json:"trade,omitempty"`
	Status       string    `json:"status"`
}
