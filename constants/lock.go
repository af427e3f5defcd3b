package constants

import "time"

const (
	// LockHeartbeatInterval is how often a held edit lock renews itself.
	LockHeartbeatInterval = 2 * time.Minute

	// LockStaleAfter is the staleness window: a lock whose last heartbeat is
	// older than this is treated as abandoned and cleared by the next checker.
	// Staleness, not unload notification, is the authoritative cleanup path.
	LockStaleAfter = 30 * time.Minute
)
