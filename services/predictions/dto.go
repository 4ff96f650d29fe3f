package predictions

import (
	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
)

// PinnedFixture is a match an admin made available for predictions. The
// document ID under predictionFixtures is the fixture ID.
type PinnedFixture struct {
	FixtureData apifootball.Fixture `firestore:"fixtureData"`
}

// PinnedFixtureEntry is a pinned fixture with its document ID, as served to
// clients.
type PinnedFixtureEntry struct {
	ID          string              `json:"id"`
	FixtureData apifootball.Fixture `json:"fixtureData"`
}

// Prediction is one user's guessed final score for a pinned fixture. One
// document exists per (user, fixture) pair; the document ID is the user ID.
// Home means home: goal counts are stored unmirrored, any right-to-left
// display flip happens in the client.
type Prediction struct {
	UserID    string `firestore:"userId" json:"userId"`
	FixtureID int    `firestore:"fixtureId" json:"fixtureId"`
	HomeGoals int    `firestore:"homeGoals" json:"homeGoals"`
	AwayGoals int    `firestore:"awayGoals" json:"awayGoals"`
	Points    int    `firestore:"points" json:"points"`
	Timestamp string `firestore:"timestamp" json:"timestamp"`
}

// PredictionRequest is the payload for saving a prediction.
type PredictionRequest struct {
	HomeGoals *int `json:"homeGoals" binding:"required,min=0"`
	AwayGoals *int `json:"awayGoals" binding:"required,min=0"`
}

// UserProfile is the subset of a users/{uid} document the leaderboard needs.
type UserProfile struct {
	DisplayName string `firestore:"displayName"`
	PhotoURL    string `firestore:"photoURL"`
}

// LeaderboardEntry is one persisted row of the derived ranking. The
// leaderboard document ID is the user ID.
type LeaderboardEntry struct {
	UserID      string `firestore:"-" json:"userId"`
	UserName    string `firestore:"userName" json:"userName"`
	UserPhoto   string `firestore:"userPhoto" json:"userPhoto"`
	TotalPoints int    `firestore:"totalPoints" json:"totalPoints"`
	Rank        int    `firestore:"rank" json:"rank"`
}

// RunSummary reports what one recompute run did.
type RunSummary struct {
	PinnedFixtures     int `json:"pinnedFixtures"`
	FinishedFixtures   int `json:"finishedFixtures"`
	UpdatedPredictions int `json:"updatedPredictions"`
	RankedUsers        int `json:"rankedUsers"`
}
