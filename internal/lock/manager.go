// Package lock manages the per-(project, date) cross-device edit lock: a
// remote row renewed by heartbeat, with staleness detection as the
// authoritative cleanup. The sync layer itself does no conflict detection;
// this advisory lock is the only cross-device mutual exclusion.
package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/entity"
	"github.com/fieldlog/fieldlog/internal/remote"
)

// Status is the answer to a lock check. When unavailable, the holder fields
// carry what the UI needs for its "locked by" message.
type Status struct {
	Available   bool      `json:"available"`
	HolderName  string    `json:"holderName,omitempty"`
	DeviceID    string    `json:"deviceId,omitempty"`
	AcquiredAt  time.Time `json:"acquiredAt,omitempty"`
	HeartbeatAt time.Time `json:"heartbeatAt,omitempty"`
}

// Manager owns at most one held lock at a time, matching one editing session
// per device. All methods are safe for concurrent use.
type Manager struct {
	locks  remote.LockRepository
	device entity.DeviceIdentity
	logger *slog.Logger

	heartbeatEvery time.Duration
	staleAfter     time.Duration
	now            func() time.Time

	mu       sync.Mutex
	held     *entity.EditLock
	hbCancel context.CancelFunc
	hbDone   chan struct{}
}

// Option configures a Manager.
type Option func(*Manager)

// WithHeartbeatInterval overrides the renewal interval.
func WithHeartbeatInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.heartbeatEvery = d
		}
	}
}

// WithStaleAfter overrides the staleness window.
func WithStaleAfter(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.staleAfter = d
		}
	}
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func NewManager(locks remote.LockRepository, device entity.DeviceIdentity, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		locks:          locks,
		device:         device,
		logger:         logger,
		heartbeatEvery: constants.LockHeartbeatInterval,
		staleAfter:     constants.LockStaleAfter,
		now:            time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Check reads the remote lock for (project, date). No row means available. A
// stale row is deleted by the checker itself (self-healing, no separate
// garbage collector) and reported available. The caller's own live lock is
// available too, so re-entry is idempotent. Anyone else's live lock comes
// back with the holder's details.
func (m *Manager) Check(ctx context.Context, projectID uuid.UUID, reportDate string) (Status, error) {
	l, err := m.locks.Get(ctx, projectID, reportDate)
	if err != nil {
		return Status{}, err
	}
	if l == nil {
		return Status{Available: true}, nil
	}

	if l.IsStale(m.staleAfter, m.now()) {
		m.logger.Info("lock.check.clearing_stale",
			"project_id", projectID, "report_date", reportDate,
			"holder", l.HolderName, "heartbeat_at", l.HeartbeatAt)
		if err := m.locks.Delete(ctx, projectID, reportDate, l.DeviceID); err != nil {
			return Status{}, err
		}
		return Status{Available: true}, nil
	}

	if l.DeviceID == m.device.DeviceID {
		return Status{Available: true, DeviceID: l.DeviceID}, nil
	}

	return Status{
		HolderName:  l.HolderName,
		DeviceID:    l.DeviceID,
		AcquiredAt:  l.AcquiredAt,
		HeartbeatAt: l.HeartbeatAt,
	}, nil
}

// Acquire takes the lock for (project, date). Unavailable means failure with
// no side effects. The write itself is a single conflict-resolving insert:
// two devices that both pass Check cannot both end up holding the row, and
// the loser sees the winner's identity. On success the heartbeat timer
// starts.
func (m *Manager) Acquire(ctx context.Context, projectID uuid.UUID, reportDate, displayName string) (Status, error) {
	st, err := m.Check(ctx, projectID, reportDate)
	if err != nil {
		return Status{}, err
	}
	if !st.Available {
		return st, nil
	}

	now := m.now().UTC()
	want := entity.EditLock{
		ProjectID:   projectID,
		ReportDate:  reportDate,
		DeviceID:    m.device.DeviceID,
		HolderName:  displayName,
		AcquiredAt:  now,
		HeartbeatAt: now,
	}
	got, err := m.locks.TryInsert(ctx, want)
	if err != nil {
		return Status{}, err
	}
	if got == nil || got.DeviceID != m.device.DeviceID {
		// Lost the race; the surviving row names the winner.
		m.logger.Info("lock.acquire.conflict",
			"project_id", projectID, "report_date", reportDate,
			"winner", holderOf(got))
		st := Status{}
		if got != nil {
			st.HolderName = got.HolderName
			st.DeviceID = got.DeviceID
			st.AcquiredAt = got.AcquiredAt
			st.HeartbeatAt = got.HeartbeatAt
		}
		return st, nil
	}

	m.mu.Lock()
	m.stopHeartbeatLocked()
	m.held = got
	m.startHeartbeatLocked()
	m.mu.Unlock()

	m.logger.Info("lock.acquired",
		"project_id", projectID, "report_date", reportDate, "holder", displayName)
	return Status{Available: true, DeviceID: m.device.DeviceID}, nil
}

// Release gives up the held lock and stops the heartbeat. The delete is
// filtered by holder identity, so a caller can never release a lock it does
// not hold; pass holderDeviceID only for stale cleanup of another device's
// row.
func (m *Manager) Release(ctx context.Context, projectID uuid.UUID, reportDate string, holderDeviceID ...string) error {
	device := m.device.DeviceID
	if len(holderDeviceID) > 0 && holderDeviceID[0] != "" {
		device = holderDeviceID[0]
	}

	if device == m.device.DeviceID {
		m.mu.Lock()
		m.stopHeartbeatLocked()
		m.held = nil
		m.mu.Unlock()
	}

	if err := m.locks.Delete(ctx, projectID, reportDate, device); err != nil {
		return err
	}
	m.logger.Info("lock.released", "project_id", projectID, "report_date", reportDate)
	return nil
}

// ReleaseAsync is the best-effort, fire-and-forget unlock issued at teardown.
// Delivery is not guaranteed; staleness detection remains the authoritative
// cleanup, so the result is only logged.
func (m *Manager) ReleaseAsync(projectID uuid.UUID, reportDate string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.Release(ctx, projectID, reportDate); err != nil {
			m.logger.Warn("lock.release_async.failed",
				"project_id", projectID, "report_date", reportDate, "error", err)
		}
	}()
}

// RefreshNow renews the held lock immediately instead of waiting for the next
// tick. Called on returning to foreground, to shrink the window in which a
// backgrounded session looks stale to other devices.
func (m *Manager) RefreshNow(ctx context.Context) {
	m.mu.Lock()
	held := m.held
	m.mu.Unlock()
	if held == nil {
		return
	}
	m.beat(ctx, held)
}

// Held returns the currently held lock, or nil.
func (m *Manager) Held() *entity.EditLock {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held == nil {
		return nil
	}
	l := *m.held
	return &l
}

// Close stops the heartbeat without touching the remote row.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopHeartbeatLocked()
	m.held = nil
}

func (m *Manager) startHeartbeatLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	m.hbCancel = cancel
	done := make(chan struct{})
	m.hbDone = done
	held := m.held

	go func() {
		defer close(done)
		ticker := time.NewTicker(m.heartbeatEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.beat(ctx, held)
			}
		}
	}()
}

func (m *Manager) stopHeartbeatLocked() {
	if m.hbCancel == nil {
		return
	}
	m.hbCancel()
	<-m.hbDone
	m.hbCancel = nil
	m.hbDone = nil
}

func (m *Manager) beat(ctx context.Context, held *entity.EditLock) {
	n, err := m.locks.Heartbeat(ctx, held.ProjectID, held.ReportDate, m.device.DeviceID, m.now().UTC())
	if err != nil {
		// A missed beat is recoverable until the staleness window closes.
		m.logger.Warn("lock.heartbeat.failed",
			"project_id", held.ProjectID, "report_date", held.ReportDate, "error", err)
		return
	}
	if n == 0 {
		m.logger.Warn("lock.heartbeat.lost",
			"project_id", held.ProjectID, "report_date", held.ReportDate)
	}
}

func holderOf(l *entity.EditLock) string {
	if l == nil {
		return ""
	}
	return l.HolderName
}
