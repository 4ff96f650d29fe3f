package admin

// Customization kinds map one-to-one onto the {kind}Customizations
// collections holding Arabic display-name overrides.
var customizationKinds = map[string]string{
	"league":    "leagueCustomizations",
	"team":      "teamCustomizations",
	"country":   "countryCustomizations",
	"continent": "continentCustomizations",
	"player":    "playerCustomizations",
	"coach":     "coachCustomizations",
}

// CustomizationRequest is the payload for setting a display-name override.
type CustomizationRequest struct {
	CustomName string `json:"customName" binding:"required"`
}

type customizationDoc struct {
	CustomName string `firestore:"customName"`
}

// Stat is one bar of the dashboard follow charts.
type Stat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStats is what the admin dashboard screen renders.
type DashboardStats struct {
	TotalUsers       int    `json:"totalUsers"`
	TotalPredictions int    `json:"totalPredictions"`
	TeamFollows      []Stat `json:"teamFollows"`
	LeagueFollows    []Stat `json:"leagueFollows"`
}
