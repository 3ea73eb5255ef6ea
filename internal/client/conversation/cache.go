// Package conversation keeps a participant's message thread and file list
// consistent with the server. The cache serves snapshots and refetches on
// invalidation, the listener turns server-pushed change events into
// invalidations, and the coordinator reconciles optimistic local actions
// with the authoritative records.
package conversation

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/clientportal/internal/client/backend"
	"github.com/dmitrijs2005/clientportal/internal/client/models"
	"github.com/dmitrijs2005/clientportal/internal/client/observe"
)

// Freshness of a cached conversation.
type Freshness int

const (
	// Stale marks data that may lag behind the server; a refetch is due
	// or has failed.
	Stale Freshness = iota
	// Fetching marks data currently being refreshed.
	Fetching
	// Valid marks data that reflects the last known server state.
	Valid
)

func (f Freshness) String() string {
	switch f {
	case Stale:
		return "stale"
	case Fetching:
		return "fetching"
	case Valid:
		return "valid"
	}
	return "unknown"
}

// Snapshot is an immutable view of one conversation. Messages are ordered
// oldest first with optimistic pending entries appended at the end. Err
// holds the last fetch failure while the data is served stale.
type Snapshot struct {
	Key       string
	Messages  []*models.Message
	Files     []*models.FileRecord
	Freshness Freshness
	Err       error
}

type entry struct {
	ctx    context.Context
	cancel context.CancelFunc

	messages []*models.Message
	files    []*models.FileRecord
	pending  []*models.Message

	freshness Freshness
	fetching  bool
	dirty     bool
	lastErr   error
}

// Cache is a query-keyed store of conversations, keyed by participant id.
// Entries are mutated only by the cache itself, driven by fetch completion
// and invalidation; optimistic appends go through the pending list and never
// touch confirmed data.
type Cache struct {
	backend  backend.Backend
	notifier *observe.Notifier[Snapshot]

	mu      sync.Mutex
	entries map[string]*entry
}

func NewCache(b backend.Backend) *Cache {
	return &Cache{
		backend:  b,
		notifier: observe.NewNotifier[Snapshot](),
		entries:  make(map[string]*entry),
	}
}

// Subscribe registers for snapshot updates across all keys; subscribers
// filter by Snapshot.Key. The returned function unsubscribes.
func (c *Cache) Subscribe() (<-chan Snapshot, func()) {
	return c.notifier.Subscribe()
}

// Mount binds the key's background fetches to ctx. A later Unmount, or
// cancellation of ctx, stops them. Mounting an already mounted key replaces
// its lifecycle context.
func (c *Cache) Mount(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.cancel()
		e.ctx, e.cancel = context.WithCancel(ctx)
		if e.fetching {
			// The in-flight load is now orphaned and will discard its
			// result; restart it under the new lifecycle context so the
			// entry cannot stay parked in the fetching state.
			e.dirty = false
			c.startFetch(key, e)
		}
		return
	}
	c.entries[key] = newEntry(ctx)
}

// Unmount cancels the key's in-flight fetch and drops the entry.
func (c *Cache) Unmount(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.cancel()
		delete(c.entries, key)
	}
}

func newEntry(ctx context.Context) *entry {
	ctx, cancel := context.WithCancel(ctx)
	return &entry{ctx: ctx, cancel: cancel, freshness: Stale}
}

// Get returns the current snapshot and, unless the data is already valid or
// a fetch is running, starts a background refetch.
func (c *Cache) Get(key string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.ensure(key)
	if e.freshness != Valid && !e.fetching {
		c.startFetch(key, e)
	}
	return c.snapshot(key, e)
}

// Invalidate marks the key stale and schedules a refetch. An invalidation
// arriving while a fetch is in flight does not start a duplicate request; it
// guarantees exactly one follow-up fetch after the current one completes.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.ensure(key)
	if e.fetching {
		e.dirty = true
		return
	}
	e.freshness = Stale
	c.startFetch(key, e)
}

// MarkStale downgrades freshness without scheduling a refetch. The listener
// uses it while its change stream is down.
func (c *Cache) MarkStale(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.ensure(key)
	if e.freshness == Valid {
		e.freshness = Stale
	}
}

// AppendPending adds an optimistic message to the key's snapshot. The entry
// lives until RemovePending, regardless of fetches completing in between.
func (c *Cache) AppendPending(key string, m *models.Message) {
	c.mu.Lock()
	e := c.ensure(key)
	e.pending = append(e.pending, m)
	snap := c.snapshot(key, e)
	c.mu.Unlock()

	c.notifier.Notify(snap)
}

// RemovePending drops the optimistic message with the given local id.
func (c *Cache) RemovePending(key string, localID string) {
	c.mu.Lock()
	e := c.ensure(key)
	kept := e.pending[:0]
	for _, m := range e.pending {
		if m.ID != localID {
			kept = append(kept, m)
		}
	}
	e.pending = kept
	snap := c.snapshot(key, e)
	c.mu.Unlock()

	c.notifier.Notify(snap)
}

// ensure returns the key's entry, creating an unmounted one on first touch.
// Callers must hold c.mu.
func (c *Cache) ensure(key string) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = newEntry(context.Background())
		c.entries[key] = e
	}
	return e
}

// snapshot builds an immutable view. Callers must hold c.mu.
func (c *Cache) snapshot(key string, e *entry) Snapshot {
	messages := make([]*models.Message, 0, len(e.messages)+len(e.pending))
	messages = append(messages, e.messages...)
	messages = append(messages, e.pending...)

	files := make([]*models.FileRecord, len(e.files))
	copy(files, e.files)

	return Snapshot{
		Key:       key,
		Messages:  messages,
		Files:     files,
		Freshness: e.freshness,
		Err:       e.lastErr,
	}
}

// startFetch transitions the entry to fetching and launches the refetch
// goroutine. Callers must hold c.mu.
func (c *Cache) startFetch(key string, e *entry) {
	e.fetching = true
	e.freshness = Fetching
	go c.fetch(e.ctx, key)
}

// fetch loads the conversation and stores the result. When an invalidation
// arrived during the load, exactly one more round runs so the cache
// converges on the state behind the latest event.
func (c *Cache) fetch(ctx context.Context, key string) {
	for {
		messages, err := c.backend.ListMessages(ctx, key)
		var files []*models.FileRecord
		if err == nil {
			files, err = c.backend.ListFiles(ctx, key)
		}

		c.mu.Lock()
		e, ok := c.entries[key]
		if !ok || e.ctx != ctx {
			// Unmounted or remounted while loading; this result is orphaned.
			c.mu.Unlock()
			return
		}

		if err != nil {
			e.lastErr = err
			e.freshness = Stale
			if e.dirty {
				// An invalidation queued behind the failed load still gets
				// its follow-up fetch.
				e.dirty = false
				c.mu.Unlock()
				continue
			}
			// Keep serving the previous data, marked stale; the change
			// listener's resubscribe path triggers the next attempt.
			e.fetching = false
			snap := c.snapshot(key, e)
			c.mu.Unlock()
			c.notifier.Notify(snap)
			return
		}

		e.messages = messages
		e.files = files
		e.lastErr = nil

		if e.dirty {
			e.dirty = false
			c.mu.Unlock()
			continue
		}

		e.freshness = Valid
		e.fetching = false
		snap := c.snapshot(key, e)
		c.mu.Unlock()
		c.notifier.Notify(snap)
		return
	}
}
