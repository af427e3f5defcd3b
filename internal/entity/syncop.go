package entity

import (
	"encoding/json"
	"time"

	"github.com/fieldlog/fieldlog/constants"
)

// SyncOperation is one queued remote write. It lives only in the local
// pending queue: removed on confirmed remote success, or dropped after the
// retry ceiling with a logged failure.
type SyncOperation struct {
	ID         string              `json:"id"`
	Type       constants.SyncOpType `json:"type"`
	Payload    json.RawMessage     `json:"payload"`
	EnqueuedAt time.Time           `json:"enqueuedAt"`
	Retries    int                 `json:"retries"`
}

// EntryBackupPayload is the payload for OpEntryBackup and OpEntryDelete.
type EntryBackupPayload struct {
	ReportID  string `json:"reportId"`
	ProjectID string `json:"projectId"`
	Entry     Entry  `json:"entry"`
}

// ReportSyncPayload is the payload for OpReportSync: the report id is enough,
// the drain reads the current local record so a stale snapshot is never
// pushed over newer edits.
type ReportSyncPayload struct {
	ReportID string `json:"reportId"`
}

// RawCapturePayload is the payload for OpRawCaptureSync.
type RawCapturePayload struct {
	ReportID string `json:"reportId"`
}
