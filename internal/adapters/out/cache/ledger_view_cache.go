// Package cache holds the in-process ledger view cache and the invalidators
// that mutations call after a successful commit.
package cache

import (
	"context"
	"sync"
	"time"

	"packing/internal/core/ports"

	"go.uber.org/zap"
)

const (
	DefaultLedgerViewTTL        = 30 * time.Second
	DefaultLedgerViewMaxEntries = 1024
)

var (
	_ ports.LedgerViewCache  = (*LedgerViewCache)(nil)
	_ ports.CacheInvalidator = (*LedgerViewCache)(nil)
)

type ledgerViewEntry struct {
	view      ports.LedgerView
	expiresAt time.Time
	storedAt  time.Time
}

// LedgerViewCache is a bounded TTL cache of ledger views. When full, expired
// entries are dropped first, then the oldest one. Every Clear advances the
// generation, so views built before it are refused by SetIfGeneration.
type LedgerViewCache struct {
	mu         sync.Mutex
	entries    map[ports.LedgerViewKey]ledgerViewEntry
	generation uint64
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	logger     *zap.Logger
}

type LedgerViewCacheOption func(*LedgerViewCache)

func WithTTL(ttl time.Duration) LedgerViewCacheOption {
	return func(c *LedgerViewCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithMaxEntries(n int) LedgerViewCacheOption {
	return func(c *LedgerViewCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

func WithClock(now func() time.Time) LedgerViewCacheOption {
	return func(c *LedgerViewCache) {
		c.now = now
	}
}

func WithLogger(logger *zap.Logger) LedgerViewCacheOption {
	return func(c *LedgerViewCache) {
		c.logger = logger
	}
}

func NewLedgerViewCache(opts ...LedgerViewCacheOption) *LedgerViewCache {
	c := &LedgerViewCache{
		entries:    make(map[ports.LedgerViewKey]ledgerViewEntry),
		ttl:        DefaultLedgerViewTTL,
		maxEntries: DefaultLedgerViewMaxEntries,
		now:        time.Now,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LedgerViewCache) Get(key ports.LedgerViewKey) (ports.LedgerView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return ports.LedgerView{}, false
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return ports.LedgerView{}, false
	}
	return entry.view, true
}

func (c *LedgerViewCache) Set(key ports.LedgerViewKey, view ports.LedgerView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, view)
}

// Generation returns the current invalidation generation.
func (c *LedgerViewCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// SetIfGeneration stores view only if no invalidation happened since
// generation was read. It reports whether the view was stored.
func (c *LedgerViewCache) SetIfGeneration(key ports.LedgerViewKey, view ports.LedgerView, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		c.logger.Debug("dropped stale ledger view",
			zap.Uint64("generation", generation), zap.Uint64("current", c.generation))
		return false
	}
	c.setLocked(key, view)
	return true
}

func (c *LedgerViewCache) setLocked(key ports.LedgerViewKey, view ports.LedgerView) {
	now := c.now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.sweepLocked(now)
		if len(c.entries) >= c.maxEntries {
			c.evictOldestLocked()
		}
	}
	c.entries[key] = ledgerViewEntry{view: view, expiresAt: now.Add(c.ttl), storedAt: now}
}

func (c *LedgerViewCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.generation++
}

// Invalidate clears the cache. Every mutation may change any view.
func (c *LedgerViewCache) Invalidate(context.Context) {
	c.Clear()
}

// Sweep drops expired entries and returns how many were removed.
func (c *LedgerViewCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.sweepLocked(c.now())
	if removed > 0 {
		c.logger.Debug("swept ledger view cache", zap.Int("removed", removed), zap.Int("remaining", len(c.entries)))
	}
	return removed
}

func (c *LedgerViewCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *LedgerViewCache) sweepLocked(now time.Time) int {
	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *LedgerViewCache) evictOldestLocked() {
	var (
		oldestKey ports.LedgerViewKey
		oldestAt  time.Time
		found     bool
	)
	for key, entry := range c.entries {
		if !found || entry.storedAt.Before(oldestAt) {
			oldestKey, oldestAt, found = key, entry.storedAt, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}
