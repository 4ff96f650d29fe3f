package favorites

// Favorites is the per-user favorites document stored at
// users/{uid}/favorites/data. Maps are keyed by the stringified entity ID.
type Favorites struct {
	Teams        map[string]FavoriteTeam   `firestore:"teams,omitempty" json:"teams,omitempty"`
	Leagues      map[string]FavoriteLeague `firestore:"leagues,omitempty" json:"leagues,omitempty"`
	Players      map[string]FavoritePlayer `firestore:"players,omitempty" json:"players,omitempty"`
	CrownedTeams map[string]CrownedTeam    `firestore:"crownedTeams,omitempty" json:"crownedTeams,omitempty"`
}

type FavoriteTeam struct {
	TeamID int    `firestore:"teamId" json:"teamId"`
	Name   string `firestore:"name" json:"name"`
	Logo   string `firestore:"logo" json:"logo"`
}

type FavoriteLeague struct {
	LeagueID int    `firestore:"leagueId" json:"leagueId"`
	Name     string `firestore:"name" json:"name"`
	Logo     string `firestore:"logo" json:"logo"`
}

type FavoritePlayer struct {
	PlayerID int    `firestore:"playerId" json:"playerId"`
	Name     string `firestore:"name" json:"name"`
	Photo    string `firestore:"photo" json:"photo"`
}

// CrownedTeam is a team the user marked with a crown and an optional note.
type CrownedTeam struct {
	TeamID int    `firestore:"teamId" json:"teamId"`
	Name   string `firestore:"name" json:"name"`
	Logo   string `firestore:"logo" json:"logo"`
	Note   string `firestore:"note" json:"note"`
}
