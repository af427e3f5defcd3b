package sync

import (
	"sync"
	"sync/atomic"
)

// Connectivity tracks whether the remote store is reachable and notifies
// subscribers on the offline-to-online edge. Offline is a designed
// degradation, never an error the user has to act on.
type Connectivity struct {
	online atomic.Bool

	mu          sync.Mutex
	onReconnect []func()
}

// NewConnectivity starts in the given state.
func NewConnectivity(online bool) *Connectivity {
	c := &Connectivity{}
	c.online.Store(online)
	return c
}

// Online reports the current state.
func (c *Connectivity) Online() bool {
	return c.online.Load()
}

// SetOnline records a state change. The offline-to-online edge fires every
// reconnect subscriber; repeated sets in the same state are no-ops.
func (c *Connectivity) SetOnline(v bool) {
	was := c.online.Swap(v)
	if was || !v {
		return
	}
	c.mu.Lock()
	subs := make([]func(), len(c.onReconnect))
	copy(subs, c.onReconnect)
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// OnReconnect registers a callback for the offline-to-online edge.
func (c *Connectivity) OnReconnect(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onReconnect = append(c.onReconnect, fn)
}
