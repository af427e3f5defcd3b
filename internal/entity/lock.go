package entity

import (
	"time"

	"github.com/google/uuid"
)

// EditLock is the cross-device mutual-exclusion record for one
// (project, report date) key. Exactly one live holder per key; a holder whose
// heartbeat goes stale is cleared by the next checker.
type EditLock struct {
	ProjectID   uuid.UUID `json:"project_id"`
	ReportDate  string    `json:"report_date"` // YYYY-MM-DD
	DeviceID    string    `json:"device_id"`
	HolderName  string    `json:"holder_name"`
	AcquiredAt  time.Time `json:"acquired_at"`
	HeartbeatAt time.Time `json:"heartbeat_at"`
}

// StaleAt returns the moment this lock becomes stale given the staleness
// window.
func (l *EditLock) StaleAt(window time.Duration) time.Time {
	return l.HeartbeatAt.Add(window)
}

// IsStale reports whether the last heartbeat is older than the window at now.
func (l *EditLock) IsStale(window time.Duration, now time.Time) bool {
	return now.Sub(l.HeartbeatAt) > window
}
