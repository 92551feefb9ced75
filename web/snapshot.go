// ABOUTME: SnapshotHolder passes table snapshots from the owning goroutine to HTTP handlers.
// ABOUTME: The owner publishes a copy after each mutation; readers never touch live state.
package web

import (
	"sync"

	"github.com/2389-research/cardtable/engine"
)

// SnapshotHolder hands table snapshots from the goroutine that owns the table
// to the HTTP handlers. The owner publishes a fresh copy after each mutation
// and readers always see the last complete publish.
type SnapshotHolder struct {
	mu   sync.RWMutex
	snap engine.TableSnapshot
}

// NewSnapshotHolder creates a holder seeded with an initial snapshot.
func NewSnapshotHolder(snap engine.TableSnapshot) *SnapshotHolder {
	return &SnapshotHolder{snap: snap}
}

// Publish replaces the stored snapshot.
func (h *SnapshotHolder) Publish(snap engine.TableSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snap = snap
}

// Current returns the most recently published snapshot. Current satisfies
// SnapshotFunc, so a holder can back a Server directly.
func (h *SnapshotHolder) Current() engine.TableSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}
