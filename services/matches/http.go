package matches

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Matches is the interface for the matches service.
type Matches interface {
	FixturesForDate(c *gin.Context, dateKey string) ([]apifootball.Fixture, error)
	FixtureByID(c *gin.Context, fixtureID int) (*apifootball.Fixture, error)
	Standings(c *gin.Context, leagueID, season int) ([]apifootball.LeagueWrapper, error)
	TeamSquad(c *gin.Context, teamID int) ([]apifootball.Squad, error)
	FixtureOdds(c *gin.Context, fixtureID int) ([]apifootball.Odds, error)
	InvalidateCache(c *gin.Context, dateKey string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Matches

	// The router to register the endpoints to.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler for the public match feed.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.GET("/date/:date_key", h.fixturesForDateHandler)
	opts.Router.GET("/fixture/:fixture_id", h.fixtureByIDHandler)
	opts.Router.GET("/standings/:league_id/:season", h.standingsHandler)
	opts.Router.GET("/squad/:team_id", h.squadHandler)
	opts.Router.GET("/odds/:fixture_id", h.oddsHandler)
}

// NewAdminHTTPHandler registers the admin-only cache controls.
func NewAdminHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.POST("/matches/cache/invalidate", h.invalidateCacheHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) fixturesForDateHandler(c *gin.Context) {
	fixtures, err := h.Service.FixturesForDate(c, c.Param("date_key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, fixtures)
}

func (h *httpHandler) fixtureByIDHandler(c *gin.Context) {
	fixtureID, err := strconv.Atoi(c.Param("fixture_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fixture_id must be numeric"})
		c.Abort()
		return
	}

	fixture, err := h.Service.FixtureByID(c, fixtureID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	if fixture == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "fixture not found"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, fixture)
}

func (h *httpHandler) standingsHandler(c *gin.Context) {
	leagueID, err := strconv.Atoi(c.Param("league_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "league_id must be numeric"})
		c.Abort()
		return
	}
	season, err := strconv.Atoi(c.Param("season"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "season must be numeric"})
		c.Abort()
		return
	}

	standings, err := h.Service.Standings(c, leagueID, season)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, standings)
}

func (h *httpHandler) squadHandler(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id must be numeric"})
		c.Abort()
		return
	}

	squads, err := h.Service.TeamSquad(c, teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, squads)
}

func (h *httpHandler) oddsHandler(c *gin.Context) {
	fixtureID, err := strconv.Atoi(c.Param("fixture_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fixture_id must be numeric"})
		c.Abort()
		return
	}

	odds, err := h.Service.FixtureOdds(c, fixtureID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, odds)
}

func (h *httpHandler) invalidateCacheHandler(c *gin.Context) {
	if err := h.Service.InvalidateCache(c, c.Query("date")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cache invalidated"})
}
