package apifootball

// Fixture status codes considered finished by the product.
const (
	StatusFullTime   = "FT"
	StatusExtraTime  = "AET"
	StatusPenalties  = "PEN"
	StatusNotStarted = "NS"
	StatusPostponed  = "PST"
	StatusCancelled  = "CANC"
)

// IsFinished reports whether the status code marks a concluded fixture.
func IsFinished(statusShort string) bool {
	switch statusShort {
	case StatusFullTime, StatusExtraTime, StatusPenalties:
		return true
	}
	return false
}

// IsSettled reports whether a fixture can no longer change, either because it
// finished or because it will not be played. Settled fixtures are skipped by
// the live refresher.
func IsSettled(statusShort string) bool {
	return IsFinished(statusShort) || statusShort == StatusPostponed || statusShort == StatusCancelled
}

type FixtureResponse struct {
	Results  int       `json:"results"`
	Response []Fixture `json:"response"`
	Paging   Paging    `json:"paging"`
}

type StandingsResponse struct {
	Results  int             `json:"results"`
	Response []LeagueWrapper `json:"response"`
}

type SquadResponse struct {
	Results  int     `json:"results"`
	Response []Squad `json:"response"`
}

type OddsResponse struct {
	Results  int    `json:"results"`
	Response []Odds `json:"response"`
}

type Paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type Fixture struct {
	Fixture FixtureInfo `json:"fixture" firestore:"fixture"`
	League  League      `json:"league" firestore:"league"`
	Teams   Teams       `json:"teams" firestore:"teams"`
	Goals   Goals       `json:"goals" firestore:"goals"`
	Score   Score       `json:"score" firestore:"score"`
}

type FixtureInfo struct {
	ID        int    `json:"id" firestore:"id"`
	Date      string `json:"date" firestore:"date"`
	Timestamp int64  `json:"timestamp" firestore:"timestamp"`
	Venue     Venue  `json:"venue" firestore:"venue"`
	Status    Status `json:"status" firestore:"status"`
}

type Venue struct {
	ID   *int    `json:"id" firestore:"id"`
	Name *string `json:"name" firestore:"name"`
	City *string `json:"city" firestore:"city"`
}

type Status struct {
	Long    string `json:"long" firestore:"long"`
	Short   string `json:"short" firestore:"short"`
	Elapsed *int   `json:"elapsed" firestore:"elapsed"`
}

type League struct {
	ID      int    `json:"id" firestore:"id"`
	Name    string `json:"name" firestore:"name"`
	Country string `json:"country" firestore:"country"`
	Logo    string `json:"logo" firestore:"logo"`
	Flag    string `json:"flag" firestore:"flag"`
	Season  int    `json:"season" firestore:"season"`
	Round   string `json:"round" firestore:"round"`
}

type Teams struct {
	Home Team `json:"home" firestore:"home"`
	Away Team `json:"away" firestore:"away"`
}

type Team struct {
	ID     int    `json:"id" firestore:"id"`
	Name   string `json:"name" firestore:"name"`
	Logo   string `json:"logo" firestore:"logo"`
	Winner *bool  `json:"winner" firestore:"winner"`
}

// Goals are nil until the corresponding score exists upstream.
type Goals struct {
	Home *int `json:"home" firestore:"home"`
	Away *int `json:"away" firestore:"away"`
}

type Score struct {
	Halftime  Goals `json:"halftime" firestore:"halftime"`
	Fulltime  Goals `json:"fulltime" firestore:"fulltime"`
	Extratime Goals `json:"extratime" firestore:"extratime"`
	Penalty   Goals `json:"penalty" firestore:"penalty"`
}

type LeagueWrapper struct {
	League StandingsLeague `json:"league"`
}

type StandingsLeague struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Country   string            `json:"country"`
	Logo      string            `json:"logo"`
	Season    int               `json:"season"`
	Standings [][]StandingsItem `json:"standings"`
}

type StandingsItem struct {
	Rank        int    `json:"rank"`
	Team        Team   `json:"team"`
	Points      int    `json:"points"`
	GoalsDiff   int    `json:"goalsDiff"`
	Group       string `json:"group"`
	Form        string `json:"form"`
	Description string `json:"description"`
	All         Record `json:"all"`
	Home        Record `json:"home"`
	Away        Record `json:"away"`
}

type Record struct {
	Played int           `json:"played"`
	Win    int           `json:"win"`
	Draw   int           `json:"draw"`
	Lose   int           `json:"lose"`
	Goals  RecordedGoals `json:"goals"`
}

type RecordedGoals struct {
	For     int `json:"for"`
	Against int `json:"against"`
}

type Squad struct {
	Team    Team     `json:"team"`
	Players []Player `json:"players"`
}

type Player struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Age      *int    `json:"age"`
	Number   *int    `json:"number"`
	Position *string `json:"position"`
	Photo    string  `json:"photo"`
}

type Odds struct {
	Fixture    FixtureInfo `json:"fixture"`
	Bookmakers []Bookmaker `json:"bookmakers"`
}

type Bookmaker struct {
	ID   int   `json:"id"`
	Name string `json:"name"`
	Bets []Bet `json:"bets"`
}

type Bet struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Values []BetValue `json:"values"`
}

type BetValue struct {
	Value string `json:"value"`
	Odd   string `json:"odd"`
}
