package predictions

import (
	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
)

// Points awarded per prediction.
const (
	pointsExactScore     = 3
	pointsCorrectOutcome = 1
)

// scorePrediction maps a prediction and a final score to a point value:
// 3 for the exact score, 1 for the correct outcome (win/loss/draw), 0
// otherwise. Unfinished fixtures never score.
func scorePrediction(predictedHome, predictedAway, actualHome, actualAway int, fixtureFinished bool) int {
	if !fixtureFinished {
		return 0
	}

	if predictedHome == actualHome && predictedAway == actualAway {
		return pointsExactScore
	}

	if outcome(predictedHome, predictedAway) == outcome(actualHome, actualAway) {
		return pointsCorrectOutcome
	}

	return 0
}

func outcome(home, away int) int {
	switch {
	case home > away:
		return 1
	case home < away:
		return -1
	}
	return 0
}

// predictionPoints scores a stored prediction against the live fixture
// state. A fixture with unknown goal counts is unscoreable and yields 0.
func predictionPoints(prediction Prediction, fixture apifootball.Fixture) int {
	if fixture.Goals.Home == nil || fixture.Goals.Away == nil {
		return 0
	}
	return scorePrediction(
		prediction.HomeGoals,
		prediction.AwayGoals,
		*fixture.Goals.Home,
		*fixture.Goals.Away,
		apifootball.IsFinished(fixture.Fixture.Status.Short),
	)
}
