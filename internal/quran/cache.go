package quran

import (
	"sync"
	"time"

	"github.com/karimosman/quranlife-api/internal/guidance"
)

const collectionTTL = 5 * time.Minute

// collectionCache is a process-local TTL cache for thematic collections.
// Expiry is time-only; there is no explicit invalidation. Concurrent misses
// for the same theme may both fetch and both write, which is fine -
// last writer wins and the entry stays consistent either way.
type collectionCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[guidance.Theme]collectionEntry
}

type collectionEntry struct {
	collection *guidance.ThematicCollection
	expiresAt  time.Time
}

func newCollectionCache(ttl time.Duration, now func() time.Time) *collectionCache {
	if ttl <= 0 {
		ttl = collectionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &collectionCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[guidance.Theme]collectionEntry),
	}
}

func (c *collectionCache) Get(theme guidance.Theme) (*guidance.ThematicCollection, bool) {
	c.mu.RLock()
	entry, ok := c.entries[theme]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.collection, true
}

func (c *collectionCache) Set(theme guidance.Theme, collection *guidance.ThematicCollection) {
	c.mu.Lock()
	c.entries[theme] = collectionEntry{
		collection: collection,
		expiresAt:  c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}
