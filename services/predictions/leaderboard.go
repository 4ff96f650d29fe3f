package predictions

import (
	"fmt"
	"sort"
)

// buildLeaderboard turns aggregated per-user totals into the ranked table to
// persist. Users whose profile could not be resolved are dropped. Ranks are
// dense sequential integers starting at 1; ordering is total points
// descending with user ID ascending as the tiebreak, so reruns over
// unchanged inputs produce an identical table.
func buildLeaderboard(totals map[string]int, profiles map[string]UserProfile) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(totals))
	for userID, totalPoints := range totals {
		profile, ok := profiles[userID]
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			UserID:      userID,
			UserName:    displayNameOrFallback(profile.DisplayName, userID),
			UserPhoto:   profile.PhotoURL,
			TotalPoints: totalPoints,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

func displayNameOrFallback(displayName, userID string) string {
	if displayName != "" {
		return displayName
	}
	short := userID
	if len(short) > 4 {
		short = short[:4]
	}
	return fmt.Sprintf("مستخدم_%s", short)
}
