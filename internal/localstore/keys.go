package localstore

import (
	"fmt"

	"github.com/google/uuid"
)

// Key builders for the durable key space. One logical record per key,
// JSON-encoded. Prefixes double as scan/clear buckets for the reconciler.
const (
	prefixReport  = "report:"
	prefixCurrent = "current:"
	prefixProject = "project:"
	prefixArchive = "archive:"

	keyDeviceIdentity = "device:identity"
	keySyncQueue      = "syncqueue"
)

func reportKey(reportID uuid.UUID) string {
	return prefixReport + reportID.String()
}

// currentReportKey indexes the report by its natural (project, date) key, the
// shape listing, drafts, and eligibility scans want.
func currentReportKey(projectID uuid.UUID, reportDate string) string {
	return fmt.Sprintf("%s%s:%s", prefixCurrent, projectID, reportDate)
}

func currentReportPrefix(projectID uuid.UUID) string {
	return fmt.Sprintf("%s%s:", prefixCurrent, projectID)
}

func projectKey(projectID uuid.UUID) string {
	return prefixProject + projectID.String()
}

func archiveKey(projectID, reportID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", prefixArchive, projectID, reportID)
}

func archivePrefix(projectID uuid.UUID) string {
	return fmt.Sprintf("%s%s:", prefixArchive, projectID)
}
