package sync

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fieldlog/fieldlog/constants"
)

func TestDebouncerCoalescesToLatest(t *testing.T) {
	d := NewDebouncer(constants.AutosaveMinDebounce)
	var ran atomic.Int32

	d.Schedule(func() { t.Error("superseded save must not run") })
	d.Schedule(func() { ran.Add(1) })
	d.Flush()

	assert.Equal(t, int32(1), ran.Load())
}

func TestDebouncerFiresAfterDelay(t *testing.T) {
	d := NewDebouncer(constants.AutosaveMinDebounce)
	done := make(chan struct{})
	d.Schedule(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * constants.AutosaveMinDebounce):
		t.Fatal("debounced save never fired")
	}
}

func TestDebouncerFlushWithoutPendingIsNoOp(t *testing.T) {
	d := NewDebouncer(constants.AutosaveMinDebounce)
	d.Flush()
}

func TestDebouncerStopCancels(t *testing.T) {
	d := NewDebouncer(constants.AutosaveMinDebounce)
	var ran atomic.Int32
	d.Schedule(func() { ran.Add(1) })
	d.Stop()

	time.Sleep(constants.AutosaveMinDebounce + 100*time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())

	// Flush after Stop has nothing left to run.
	d.Flush()
	assert.Equal(t, int32(0), ran.Load())
}
