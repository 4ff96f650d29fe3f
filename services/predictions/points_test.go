package predictions

import (
	"testing"

	"github.com/xorcare/pointer"

	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
)

func TestScorePredictionExact(t *testing.T) {
	cases := []struct {
		ph, pa, ah, aa int
	}{
		{2, 1, 2, 1},
		{0, 0, 0, 0},
		{3, 3, 3, 3},
		{0, 4, 0, 4},
	}
	for _, c := range cases {
		if got := scorePrediction(c.ph, c.pa, c.ah, c.aa, true); got != 3 {
			t.Errorf("scorePrediction(%d,%d vs %d,%d) = %d, want 3", c.ph, c.pa, c.ah, c.aa, got)
		}
	}
}

func TestScorePredictionOutcome(t *testing.T) {
	cases := []struct {
		ph, pa, ah, aa int
	}{
		{2, 1, 3, 0}, // both home wins
		{0, 1, 1, 4}, // both away wins
		{1, 1, 2, 2}, // both draws
	}
	for _, c := range cases {
		if got := scorePrediction(c.ph, c.pa, c.ah, c.aa, true); got != 1 {
			t.Errorf("scorePrediction(%d,%d vs %d,%d) = %d, want 1", c.ph, c.pa, c.ah, c.aa, got)
		}
	}
}

func TestScorePredictionMiss(t *testing.T) {
	cases := []struct {
		ph, pa, ah, aa int
	}{
		{2, 1, 0, 0}, // home win vs draw
		{2, 1, 0, 3}, // home win vs away win
		{1, 1, 2, 0}, // draw vs home win
	}
	for _, c := range cases {
		if got := scorePrediction(c.ph, c.pa, c.ah, c.aa, true); got != 0 {
			t.Errorf("scorePrediction(%d,%d vs %d,%d) = %d, want 0", c.ph, c.pa, c.ah, c.aa, got)
		}
	}
}

func TestScorePredictionUnfinished(t *testing.T) {
	// An unfinished fixture never scores, even on an exact match.
	if got := scorePrediction(2, 1, 2, 1, false); got != 0 {
		t.Errorf("scorePrediction unfinished = %d, want 0", got)
	}
}

func TestScorePredictionOutcomeMatchesSign(t *testing.T) {
	// Exhaustive small-range check: a non-exact prediction scores 1
	// exactly when the outcome classes agree.
	for ph := 0; ph <= 4; ph++ {
		for pa := 0; pa <= 4; pa++ {
			for ah := 0; ah <= 4; ah++ {
				for aa := 0; aa <= 4; aa++ {
					got := scorePrediction(ph, pa, ah, aa, true)
					exact := ph == ah && pa == aa
					sameOutcome := outcome(ph, pa) == outcome(ah, aa)
					want := 0
					if exact {
						want = 3
					} else if sameOutcome {
						want = 1
					}
					if got != want {
						t.Fatalf("scorePrediction(%d,%d vs %d,%d) = %d, want %d", ph, pa, ah, aa, got, want)
					}
				}
			}
		}
	}
}

func finishedFixture(id int, home, away *int, status string) apifootball.Fixture {
	return apifootball.Fixture{
		Fixture: apifootball.FixtureInfo{
			ID:     id,
			Status: apifootball.Status{Short: status},
		},
		Goals: apifootball.Goals{Home: home, Away: away},
	}
}

func TestPredictionPoints(t *testing.T) {
	prediction := Prediction{UserID: "u1", FixtureID: 100, HomeGoals: 2, AwayGoals: 1}

	cases := []struct {
		name    string
		fixture apifootball.Fixture
		want    int
	}{
		{"exact at full time", finishedFixture(100, pointer.Int(2), pointer.Int(1), "FT"), 3},
		{"exact after extra time", finishedFixture(100, pointer.Int(2), pointer.Int(1), "AET"), 3},
		{"exact after penalties", finishedFixture(100, pointer.Int(2), pointer.Int(1), "PEN"), 3},
		{"correct outcome", finishedFixture(100, pointer.Int(3), pointer.Int(0), "FT"), 1},
		{"wrong outcome", finishedFixture(100, pointer.Int(0), pointer.Int(0), "FT"), 0},
		{"not started", finishedFixture(100, nil, nil, "NS"), 0},
		{"live", finishedFixture(100, pointer.Int(2), pointer.Int(1), "2H"), 0},
		{"finished but goals missing", finishedFixture(100, nil, nil, "FT"), 0},
		{"finished with one goal count missing", finishedFixture(100, pointer.Int(2), nil, "FT"), 0},
	}

	for _, c := range cases {
		if got := predictionPoints(prediction, c.fixture); got != c.want {
			t.Errorf("%s: predictionPoints = %d, want %d", c.name, got, c.want)
		}
	}
}
