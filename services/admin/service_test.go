package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSortedStatsOrdersByCountThenName(t *testing.T) {
	stats := toSortedStats(map[string]int{
		"الهلال":  12,
		"الأهلي":  7,
		"الاتحاد": 12,
		"الزمالك": 1,
	})

	assert.Equal(t, []Stat{
		{Name: "الاتحاد", Count: 12},
		{Name: "الهلال", Count: 12},
		{Name: "الأهلي", Count: 7},
		{Name: "الزمالك", Count: 1},
	}, stats)
}

func TestToSortedStatsEmpty(t *testing.T) {
	assert.Empty(t, toSortedStats(map[string]int{}))
}

func TestCustomizationKindsAreKnown(t *testing.T) {
	for _, kind := range []string{"league", "team", "country", "continent", "player", "coach"} {
		_, ok := customizationKinds[kind]
		assert.True(t, ok, kind)
	}
	_, ok := customizationKinds["referee"]
	assert.False(t, ok)
}
