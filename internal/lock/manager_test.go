package lock

import (
	"context"
	"fmt"
	gosync "sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlog/fieldlog/internal/entity"
)

// fakeLocks is an in-memory LockRepository with the same semantics as the
// remote table: one row per (project, date), insert-ignore on conflict,
// holder-filtered heartbeat and delete.
type fakeLocks struct {
	mu   gosync.Mutex
	rows map[string]entity.EditLock
}

func newFakeLocks() *fakeLocks {
	return &fakeLocks{rows: map[string]entity.EditLock{}}
}

func lockKey(projectID uuid.UUID, reportDate string) string {
	return fmt.Sprintf("%s:%s", projectID, reportDate)
}

func (f *fakeLocks) Get(_ context.Context, projectID uuid.UUID, reportDate string) (*entity.EditLock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[lockKey(projectID, reportDate)]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeLocks) TryInsert(_ context.Context, l entity.EditLock) (*entity.EditLock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := lockKey(l.ProjectID, l.ReportDate)
	if existing, ok := f.rows[key]; ok {
		// Conflict: the surviving row wins.
		return &existing, nil
	}
	f.rows[key] = l
	return &l, nil
}

func (f *fakeLocks) Heartbeat(_ context.Context, projectID uuid.UUID, reportDate, deviceID string, at time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := lockKey(projectID, reportDate)
	row, ok := f.rows[key]
	if !ok || row.DeviceID != deviceID {
		return 0, nil
	}
	row.HeartbeatAt = at
	f.rows[key] = row
	return 1, nil
}

func (f *fakeLocks) Delete(_ context.Context, projectID uuid.UUID, reportDate, deviceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := lockKey(projectID, reportDate)
	if row, ok := f.rows[key]; ok && row.DeviceID == deviceID {
		delete(f.rows, key)
	}
	return nil
}

func newTestManager(locks *fakeLocks, deviceID, name string, now func() time.Time) *Manager {
	return NewManager(locks,
		entity.DeviceIdentity{DeviceID: deviceID, DisplayName: name},
		nil,
		WithHeartbeatInterval(time.Hour), // keep the timer quiet in tests
		WithClock(now),
	)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAcquireThenConflict(t *testing.T) {
	locks := newFakeLocks()
	now := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	a := newTestManager(locks, "device-a", "Sam", fixedClock(now))
	b := newTestManager(locks, "device-b", "Rae", fixedClock(now))
	defer a.Close()
	defer b.Close()

	projectID := uuid.New()
	ctx := context.Background()

	st, err := a.Acquire(ctx, projectID, "2026-03-14", "Sam")
	require.NoError(t, err)
	assert.True(t, st.Available)
	require.NotNil(t, a.Held())

	st, err = b.Acquire(ctx, projectID, "2026-03-14", "Rae")
	require.NoError(t, err)
	assert.False(t, st.Available)
	assert.Equal(t, "Sam", st.HolderName)
	assert.Equal(t, "device-a", st.DeviceID)
	assert.Nil(t, b.Held())
}

func TestCheckSelfHeldIsAvailable(t *testing.T) {
	locks := newFakeLocks()
	now := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	a := newTestManager(locks, "device-a", "Sam", fixedClock(now))
	defer a.Close()

	projectID := uuid.New()
	ctx := context.Background()
	_, err := a.Acquire(ctx, projectID, "2026-03-14", "Sam")
	require.NoError(t, err)

	st, err := a.Check(ctx, projectID, "2026-03-14")
	require.NoError(t, err)
	assert.True(t, st.Available)

	// Re-acquire is idempotent.
	st, err = a.Acquire(ctx, projectID, "2026-03-14", "Sam")
	require.NoError(t, err)
	assert.True(t, st.Available)
}

func TestCheckClearsStaleLock(t *testing.T) {
	locks := newFakeLocks()
	projectID := uuid.New()
	acquired := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	locks.rows[lockKey(projectID, "2026-03-14")] = entity.EditLock{
		ProjectID:   projectID,
		ReportDate:  "2026-03-14",
		DeviceID:    "device-gone",
		HolderName:  "Crashed",
		AcquiredAt:  acquired,
		HeartbeatAt: acquired,
	}

	// 31 minutes later the row is past the 30-minute staleness window.
	later := acquired.Add(31 * time.Minute)
	b := newTestManager(locks, "device-b", "Rae", fixedClock(later))
	defer b.Close()

	st, err := b.Check(context.Background(), projectID, "2026-03-14")
	require.NoError(t, err)
	assert.True(t, st.Available)
	assert.Empty(t, locks.rows, "stale row should be deleted by the checker")
}

func TestCheckLiveLockWithinWindowBlocks(t *testing.T) {
	locks := newFakeLocks()
	projectID := uuid.New()
	acquired := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	locks.rows[lockKey(projectID, "2026-03-14")] = entity.EditLock{
		ProjectID:   projectID,
		ReportDate:  "2026-03-14",
		DeviceID:    "device-a",
		HolderName:  "Sam",
		AcquiredAt:  acquired,
		HeartbeatAt: acquired,
	}

	later := acquired.Add(29 * time.Minute)
	b := newTestManager(locks, "device-b", "Rae", fixedClock(later))
	defer b.Close()

	st, err := b.Check(context.Background(), projectID, "2026-03-14")
	require.NoError(t, err)
	assert.False(t, st.Available)
	assert.Equal(t, "Sam", st.HolderName)
	assert.Equal(t, acquired, st.HeartbeatAt)
}

func TestReleaseIsHolderFiltered(t *testing.T) {
	locks := newFakeLocks()
	now := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	a := newTestManager(locks, "device-a", "Sam", fixedClock(now))
	b := newTestManager(locks, "device-b", "Rae", fixedClock(now))
	defer a.Close()
	defer b.Close()

	projectID := uuid.New()
	ctx := context.Background()
	_, err := a.Acquire(ctx, projectID, "2026-03-14", "Sam")
	require.NoError(t, err)

	// A non-holder release does not remove the row.
	require.NoError(t, b.Release(ctx, projectID, "2026-03-14"))
	assert.Len(t, locks.rows, 1)

	require.NoError(t, a.Release(ctx, projectID, "2026-03-14"))
	assert.Empty(t, locks.rows)
	assert.Nil(t, a.Held())
}

func TestAcquireRaceOnlyOneWinner(t *testing.T) {
	locks := newFakeLocks()
	now := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	projectID := uuid.New()
	ctx := context.Background()

	// Simulate both devices passing Check before either inserts: seed the
	// row as device-a's insert landing first, then let device-b try.
	a := newTestManager(locks, "device-a", "Sam", fixedClock(now))
	defer a.Close()
	_, err := a.Acquire(ctx, projectID, "2026-03-14", "Sam")
	require.NoError(t, err)

	b := newTestManager(locks, "device-b", "Rae", fixedClock(now))
	defer b.Close()
	st, err := b.Acquire(ctx, projectID, "2026-03-14", "Rae")
	require.NoError(t, err)
	assert.False(t, st.Available)
	assert.Equal(t, "device-a", st.DeviceID)

	require.Len(t, locks.rows, 1)
	for _, row := range locks.rows {
		assert.Equal(t, "device-a", row.DeviceID)
	}
}

func TestRefreshNowRenewsHeartbeat(t *testing.T) {
	locks := newFakeLocks()
	current := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	var mu gosync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}
	a := newTestManager(locks, "device-a", "Sam", clock)
	defer a.Close()

	projectID := uuid.New()
	ctx := context.Background()
	_, err := a.Acquire(ctx, projectID, "2026-03-14", "Sam")
	require.NoError(t, err)

	mu.Lock()
	current = current.Add(10 * time.Minute)
	mu.Unlock()
	a.RefreshNow(ctx)

	row := locks.rows[lockKey(projectID, "2026-03-14")]
	assert.Equal(t, current, row.HeartbeatAt)
}
