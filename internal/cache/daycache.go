package cache

import (
	"context"
	"sync"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/providers"
	"team-form-service/internal/timeutil"
)

const defaultTTL = 5 * time.Minute

// DayCache is a read-through cache decorating a ScoreboardProvider, keyed by
// (sport, date). A single fetch is in flight per key; concurrent requests for
// the same day wait for it instead of duplicating upstream calls. Failures are
// never cached.
type DayCache struct {
	inner providers.ScoreboardProvider
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]*dayEntry
}

type dayEntry struct {
	ready     chan struct{}
	events    []domain.Event
	err       error
	fetchedAt time.Time
}

// NewDayCache wraps the given provider. A non-positive TTL uses the default.
func NewDayCache(inner providers.ScoreboardProvider, ttl time.Duration) *DayCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &DayCache{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*dayEntry),
	}
}

// FetchDay returns the cached day when fresh, otherwise fetches through to the
// inner provider. Exactly one goroutine owns the fetch for a given key.
func (c *DayCache) FetchDay(ctx context.Context, sport domain.Sport, day time.Time) ([]domain.Event, error) {
	key := cacheKey(sport, day)

	c.mu.Lock()
	if existing, ok := c.entries[key]; ok {
		if !closed(existing.ready) || c.fresh(existing) {
			c.mu.Unlock()
			return c.wait(ctx, existing)
		}
	}
	entry := &dayEntry{ready: make(chan struct{})}
	c.entries[key] = entry
	c.mu.Unlock()

	entry.events, entry.err = c.inner.FetchDay(ctx, sport, day)
	entry.fetchedAt = c.now()
	close(entry.ready)

	if entry.err != nil {
		c.mu.Lock()
		if c.entries[key] == entry {
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}
	return entry.events, entry.err
}

func (c *DayCache) wait(ctx context.Context, entry *dayEntry) ([]domain.Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-entry.ready:
		return entry.events, entry.err
	}
}

func (c *DayCache) fresh(entry *dayEntry) bool {
	return entry.err == nil && c.now().Sub(entry.fetchedAt) < c.ttl
}

func cacheKey(sport domain.Sport, day time.Time) string {
	return string(sport) + "|" + timeutil.CompactDate(day)
}

func closed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
