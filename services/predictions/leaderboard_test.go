package predictions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func profilesFor(userIDs ...string) map[string]UserProfile {
	profiles := make(map[string]UserProfile, len(userIDs))
	for _, id := range userIDs {
		profiles[id] = UserProfile{DisplayName: "name-" + id, PhotoURL: "photo-" + id}
	}
	return profiles
}

func TestBuildLeaderboardOrderingAndRanks(t *testing.T) {
	totals := map[string]int{"alice": 5, "bob": 9, "carol": 7}
	entries := buildLeaderboard(totals, profilesFor("alice", "bob", "carol"))

	assert.Len(t, entries, 3)
	assert.Equal(t, "bob", entries[0].UserID)
	assert.Equal(t, "carol", entries[1].UserID)
	assert.Equal(t, "alice", entries[2].UserID)

	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank, "ranks must be dense from 1")
	}
}

func TestBuildLeaderboardTiesGetDistinctRanks(t *testing.T) {
	totals := map[string]int{"u1": 9, "u2": 9, "u3": 5}
	entries := buildLeaderboard(totals, profilesFor("u1", "u2", "u3"))

	assert.Len(t, entries, 3)
	// Tied users still receive distinct consecutive ranks, ordered by user
	// ID; the lower-scored user comes last.
	assert.Equal(t, "u1", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "u2", entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "u3", entries[2].UserID)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestBuildLeaderboardRankMonotonicity(t *testing.T) {
	totals := map[string]int{"a": 3, "b": 12, "c": 0, "d": 7, "e": 7}
	entries := buildLeaderboard(totals, profilesFor("a", "b", "c", "d", "e"))

	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i].TotalPoints, entries[i-1].TotalPoints,
			"a lower rank must never hold fewer points")
		assert.Equal(t, entries[i-1].Rank+1, entries[i].Rank)
	}
}

func TestBuildLeaderboardDropsUnresolvedProfiles(t *testing.T) {
	totals := map[string]int{"known": 4, "ghost": 11}
	entries := buildLeaderboard(totals, profilesFor("known"))

	assert.Len(t, entries, 1)
	assert.Equal(t, "known", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank, "ranks restart at 1 after dropping users")
}

func TestBuildLeaderboardIsDeterministic(t *testing.T) {
	totals := map[string]int{"a": 2, "b": 2, "c": 2, "d": 8}
	profiles := profilesFor("a", "b", "c", "d")

	first := buildLeaderboard(totals, profiles)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, buildLeaderboard(totals, profiles),
			"identical inputs must produce an identical ranking")
	}
}

func TestBuildLeaderboardEmptyInput(t *testing.T) {
	entries := buildLeaderboard(map[string]int{}, map[string]UserProfile{})
	assert.Empty(t, entries)
}

func TestDisplayNameFallback(t *testing.T) {
	totals := map[string]int{"abcdef": 1}
	profiles := map[string]UserProfile{"abcdef": {DisplayName: "", PhotoURL: ""}}

	entries := buildLeaderboard(totals, profiles)
	assert.Len(t, entries, 1)
	assert.Equal(t, "مستخدم_abcd", entries[0].UserName)
}
