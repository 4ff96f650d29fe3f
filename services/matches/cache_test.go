package matches

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"

	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
)

func fixtureWithScore(id, home, away int, statusShort string) apifootball.Fixture {
	return apifootball.Fixture{
		Fixture: apifootball.FixtureInfo{
			ID:     id,
			Status: apifootball.Status{Short: statusShort},
		},
		Goals: apifootball.Goals{
			Home: pointer.Int(home),
			Away: pointer.Int(away),
		},
	}
}

func TestDateCacheGetMiss(t *testing.T) {
	cache := newDateCache(time.Minute, 10)

	_, ok := cache.Get("2026-08-28")
	assert.False(t, ok)
}

func TestDateCacheSetAndGet(t *testing.T) {
	cache := newDateCache(time.Minute, 10)
	fixtures := []apifootball.Fixture{fixtureWithScore(1, 0, 0, "NS")}

	cache.Set("2026-08-28", fixtures)

	cached, ok := cache.Get("2026-08-28")
	assert.True(t, ok)
	assert.Equal(t, fixtures, cached)
}

func TestDateCacheExpiry(t *testing.T) {
	cache := newDateCache(10*time.Millisecond, 10)
	cache.Set("2026-08-28", []apifootball.Fixture{fixtureWithScore(1, 0, 0, "NS")})

	time.Sleep(25 * time.Millisecond)

	_, ok := cache.Get("2026-08-28")
	assert.False(t, ok)
}

func TestDateCacheZeroTTLDisablesCaching(t *testing.T) {
	cache := newDateCache(0, 10)
	cache.Set("2026-08-28", []apifootball.Fixture{fixtureWithScore(1, 0, 0, "NS")})

	_, ok := cache.Get("2026-08-28")
	assert.False(t, ok)
}

func TestDateCacheMergeSwapsUpdatedFixtures(t *testing.T) {
	cache := newDateCache(time.Minute, 10)
	cache.Set("2026-08-28", []apifootball.Fixture{
		fixtureWithScore(1, 0, 0, "1H"),
		fixtureWithScore(2, 1, 1, "FT"),
	})

	cache.Merge("2026-08-28", map[int]apifootball.Fixture{
		1: fixtureWithScore(1, 2, 0, "2H"),
	})

	cached, ok := cache.Get("2026-08-28")
	assert.True(t, ok)
	assert.Equal(t, 2, *cached[0].Goals.Home)
	assert.Equal(t, "2H", cached[0].Fixture.Status.Short)
	assert.Equal(t, "FT", cached[1].Fixture.Status.Short)
}

func TestDateCacheMergeUnknownDateIsNoop(t *testing.T) {
	cache := newDateCache(time.Minute, 10)

	cache.Merge("2026-08-28", map[int]apifootball.Fixture{
		1: fixtureWithScore(1, 2, 0, "2H"),
	})

	_, ok := cache.Peek("2026-08-28")
	assert.False(t, ok)
}

func TestDateCachePeekIgnoresExpiry(t *testing.T) {
	cache := newDateCache(10*time.Millisecond, 10)
	cache.Set("2026-08-28", []apifootball.Fixture{fixtureWithScore(1, 0, 0, "1H")})

	time.Sleep(25 * time.Millisecond)

	cached, ok := cache.Peek("2026-08-28")
	assert.True(t, ok)
	assert.Len(t, cached, 1)
}

func TestDateCacheActiveDates(t *testing.T) {
	cache := newDateCache(time.Minute, 10)
	cache.Set("2026-08-27", nil)
	cache.Set("2026-08-28", nil)

	dates := cache.ActiveDates(time.Minute)
	assert.ElementsMatch(t, []string{"2026-08-27", "2026-08-28"}, dates)

	dates = cache.ActiveDates(-time.Minute)
	assert.Empty(t, dates)
}

func TestDateCacheEvictsOldestWhenFull(t *testing.T) {
	cache := newDateCache(time.Minute, 2)
	cache.Set("2026-08-26", nil)
	time.Sleep(2 * time.Millisecond)
	cache.Set("2026-08-27", nil)
	time.Sleep(2 * time.Millisecond)
	cache.Set("2026-08-28", nil)

	_, ok := cache.Peek("2026-08-26")
	assert.False(t, ok)
	_, ok = cache.Peek("2026-08-27")
	assert.True(t, ok)
	_, ok = cache.Peek("2026-08-28")
	assert.True(t, ok)
}

func TestDateCacheInvalidate(t *testing.T) {
	cache := newDateCache(time.Minute, 10)
	cache.Set("2026-08-27", nil)
	cache.Set("2026-08-28", nil)

	cache.Invalidate("2026-08-27")
	_, ok := cache.Peek("2026-08-27")
	assert.False(t, ok)
	_, ok = cache.Peek("2026-08-28")
	assert.True(t, ok)

	cache.InvalidateAll()
	_, ok = cache.Peek("2026-08-28")
	assert.False(t, ok)
}
