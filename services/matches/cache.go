package matches

import (
	"sync"
	"time"

	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
)

type cacheEntry struct {
	fixtures      []apifootball.Fixture
	expiresAt     time.Time
	lastRequested time.Time
}

// dateCache holds the match feed keyed by date string (YYYY-MM-DD). It is
// owned by the matches service, never package-global, and is invalidated
// explicitly on admin request.
type dateCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
}

func newDateCache(ttl time.Duration, maxEntries int) *dateCache {
	return &dateCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns the cached fixtures for a date and records the request so the
// live refresher knows the date is being watched. Expired entries miss.
func (c *dateCache) Get(dateKey string) ([]apifootball.Fixture, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[dateKey]
	if !ok {
		return nil, false
	}
	entry.lastRequested = now
	c.entries[dateKey] = entry

	if !entry.expiresAt.After(now) {
		return nil, false
	}
	return entry.fixtures, true
}

// Set stores the fixtures for a date, evicting when the cache is full.
func (c *dateCache) Set(dateKey string, fixtures []apifootball.Fixture) {
	if c.ttl <= 0 {
		return
	}

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictExpired(now)
		if len(c.entries) >= c.maxEntries {
			c.evictOldest()
		}
	}

	c.entries[dateKey] = cacheEntry{
		fixtures:      fixtures,
		expiresAt:     now.Add(c.ttl),
		lastRequested: now,
	}
}

// Merge swaps refreshed fixtures into an existing entry without extending
// its TTL; fixtures absent from updated stay as they were.
func (c *dateCache) Merge(dateKey string, updated map[int]apifootball.Fixture) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[dateKey]
	if !ok {
		return
	}

	merged := make([]apifootball.Fixture, len(entry.fixtures))
	for i, fixture := range entry.fixtures {
		if fresh, ok := updated[fixture.Fixture.ID]; ok {
			merged[i] = fresh
		} else {
			merged[i] = fixture
		}
	}
	entry.fixtures = merged
	c.entries[dateKey] = entry
}

// Peek returns the cached fixtures without counting as a request and without
// honoring expiry. The refresher uses it to find fixtures worth re-polling.
func (c *dateCache) Peek(dateKey string) ([]apifootball.Fixture, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[dateKey]
	if !ok {
		return nil, false
	}
	return entry.fixtures, true
}

// ActiveDates lists dates requested within the given window. Dates nobody is
// watching anymore drop out, which bounds what the refresher polls.
func (c *dateCache) ActiveDates(window time.Duration) []string {
	cutoff := time.Now().Add(-window)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var dates []string
	for dateKey, entry := range c.entries {
		if entry.lastRequested.After(cutoff) {
			dates = append(dates, dateKey)
		}
	}
	return dates
}

// Invalidate drops a single date.
func (c *dateCache) Invalidate(dateKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, dateKey)
}

// InvalidateAll drops everything, forcing fresh upstream fetches.
func (c *dateCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *dateCache) evictExpired(now time.Time) {
	for dateKey, entry := range c.entries {
		if !entry.expiresAt.After(now) {
			delete(c.entries, dateKey)
		}
	}
}

func (c *dateCache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true
	for dateKey, entry := range c.entries {
		if first || entry.lastRequested.Before(oldest) {
			oldestKey = dateKey
			oldest = entry.lastRequested
			first = false
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
