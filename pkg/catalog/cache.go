package catalog

import (
	"context"
	"fmt"
	"sync"
)

// Status of a collection snapshot.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Snapshot is the cache's current view of one collection. Items must be
// treated as read-only by callers; the cache hands out the same backing
// slice and never mutates a slice it has already handed out.
type Snapshot struct {
	Items  []Item `json:"items"`
	Status Status `json:"status"`
	Err    string `json:"error,omitempty"`
}

// Cache holds one snapshot per collection and is the single source of truth
// for every view bound to that collection. Refresh replaces the whole
// sequence with the gateway's response — no incremental merge. Two
// concurrent refreshes for the same collection are safe but unordered: the
// last response to land wins. Callers that need strict ordering serialize
// through the Coordinator.
type Cache struct {
	gateway  Gateway
	registry Registry

	mu    sync.RWMutex
	snaps map[string]Snapshot
}

func NewCache(gateway Gateway, registry Registry) *Cache {
	return &Cache{
		gateway:  gateway,
		registry: registry,
		snaps:    make(map[string]Snapshot),
	}
}

// Get returns the latest known snapshot without blocking. An unknown or
// never-fetched collection reads as idle and empty.
func (c *Cache) Get(collection string) Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.snaps[collection]
	if !ok {
		return Snapshot{Status: StatusIdle}
	}
	return snap
}

// Refresh fetches the collection and replaces its snapshot. On failure the
// snapshot moves to error but keeps the previous items — a view never goes
// blank because one fetch failed. The fetch error is both recorded in the
// snapshot and returned, so callers may either inspect the snapshot or the
// return value.
func (c *Cache) Refresh(ctx context.Context, collection string) error {
	spec, ok := c.registry.Lookup(collection)
	if !ok {
		return &ValidationError{Field: "collection", Reason: fmt.Sprintf("unknown collection %q", collection)}
	}

	c.mu.Lock()
	prev := c.snaps[collection]
	c.snaps[collection] = Snapshot{Items: prev.Items, Status: StatusLoading}
	c.mu.Unlock()

	items, err := c.gateway.List(ctx, collection, Query{
		OrderBy:   spec.OrderBy,
		Ascending: spec.Ascending,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.snaps[collection] = Snapshot{Items: prev.Items, Status: StatusError, Err: err.Error()}
		return err
	}
	c.snaps[collection] = Snapshot{Items: items, Status: StatusReady}
	return nil
}

// EnsureFresh refreshes a collection that has never been fetched, then
// returns the current snapshot. Views call this on mount so the first
// reader pays for the fetch and later readers hit the snapshot.
func (c *Cache) EnsureFresh(ctx context.Context, collection string) Snapshot {
	if c.Get(collection).Status == StatusIdle {
		_ = c.Refresh(ctx, collection) // failure is captured in the snapshot
	}
	return c.Get(collection)
}
