// Package state owns the in-memory workspace document. All views read
// snapshots from the container and mutate by handing back a complete
// replacement document; the container normalizes invariants, swaps the
// document, and persists it write-behind through the store adapter.
package state

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/getsentry/sentry-go"

	"github.com/dyondem/callsheet/internal/models"
	"github.com/dyondem/callsheet/internal/store"
)

// DefaultKey is the well-known key the workspace blob lives under.
const DefaultKey = "callsheet:workspace"

// Container holds the single workspace document and its persistence rules.
type Container struct {
	store store.Adapter
	key   string

	mu  sync.RWMutex
	doc models.Workspace

	// pending holds the latest serialized document not yet persisted. A
	// single drainer goroutine writes it out, so saves reach the backend in
	// mutation order and intermediate blobs are coalesced away.
	pending    string
	dirty      bool
	persisting bool

	// saves tracks the drainer so shutdown can wait for the slot to empty.
	saves sync.WaitGroup
}

func New(adapter store.Adapter, key string) *Container {
	if key == "" {
		key = DefaultKey
	}
	return &Container{
		store: adapter,
		key:   key,
		doc:   models.DefaultWorkspace(),
	}
}

// Load hydrates the container from the store. A missing value seeds the
// default document; an unreadable backend or unparseable value is logged and
// likewise falls open to the seed. Load never fails the caller.
func (c *Container) Load(ctx context.Context) {
	doc := models.DefaultWorkspace()

	raw, ok, err := c.store.Get(ctx, c.key)
	switch {
	case err != nil:
		slog.Error("workspace load failed, using seeded default", "key", c.key, "error", err)
	case !ok:
		slog.Info("no persisted workspace, seeding default", "key", c.key)
	default:
		var loaded models.Workspace
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			slog.Error("persisted workspace is not parseable, using seeded default", "key", c.key, "error", err)
		} else {
			doc = loaded
		}
	}

	doc.Normalize()

	c.mu.Lock()
	c.doc = doc
	c.mu.Unlock()
}

// Current returns a deep snapshot of the document. Callers mutate the copy
// and hand it back through Replace.
func (c *Container) Current() models.Workspace {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc.Clone()
}

// Replace accepts a complete replacement document. The new document becomes
// visible immediately; persistence runs behind the caller's back, in mutation
// order, and a failed save is reported, not rolled back — the in-memory
// document stays authoritative for the session.
func (c *Container) Replace(doc models.Workspace) {
	doc.Normalize()

	raw, err := json.Marshal(doc)
	if err != nil {
		// Unreachable for a well-formed Workspace; keep the old blob rather
		// than persisting garbage.
		slog.Error("workspace serialization failed", "key", c.key, "error", err)
		sentry.CaptureException(err)
		return
	}

	// Swap and enqueue under the same lock so the pending slot can never
	// hold an older document than memory does.
	c.mu.Lock()
	c.doc = doc
	c.pending = string(raw)
	c.dirty = true
	if !c.persisting {
		c.persisting = true
		c.saves.Add(1)
		go c.persist()
	}
	c.mu.Unlock()
}

// persist drains the pending slot one blob at a time. Only the latest blob
// matters: a mutation landing mid-save overwrites the slot and gets written
// on the next pass, so the backend never finishes behind memory.
func (c *Container) persist() {
	defer c.saves.Done()
	for {
		c.mu.Lock()
		if !c.dirty {
			c.persisting = false
			c.mu.Unlock()
			return
		}
		raw := c.pending
		c.dirty = false
		c.mu.Unlock()

		if err := c.store.Set(context.Background(), c.key, raw); err != nil {
			// At-most-once per blob: no retry. The session keeps running
			// on memory.
			slog.Error("workspace save failed", "key", c.key, "error", err)
			sentry.CaptureException(err)
		}
	}
}

// Wait blocks until the pending slot is drained. Called on shutdown so the
// last mutation reaches the backend, and by tests that need the write-behind
// to settle.
func (c *Container) Wait() {
	c.saves.Wait()
}
