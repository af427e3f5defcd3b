package constants

import "time"

// SyncOpType tags an operation in the local pending queue.
type SyncOpType string

const (
	OpEntryBackup    SyncOpType = "ENTRY_BACKUP"     // upsert one captured entry
	OpEntryDelete    SyncOpType = "ENTRY_DELETE"     // delete one captured entry
	OpReportSync     SyncOpType = "REPORT_SYNC"      // upsert the report row + derived tables
	OpRawCaptureSync SyncOpType = "RAW_CAPTURE_SYNC" // replace the raw-capture row
)

// SyncMaxRetries is the retry ceiling for a queued operation. An operation
// that fails this many times with a non-offline error is dropped from the
// queue and logged; local data is never rolled back.
const SyncMaxRetries = 3

// Autosave debounce bounds. Losing focus flushes immediately regardless.
const (
	AutosaveDebounce    = 2 * time.Second
	AutosaveMinDebounce = 500 * time.Millisecond
)

// RefineTimeout is the hard deadline for the refinement webhook call. A call
// that exceeds it is surfaced as retryable, never silently lost.
const RefineTimeout = 30 * time.Second
