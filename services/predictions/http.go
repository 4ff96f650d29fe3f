package predictions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	auth "github.com/nabdalmalaeb/score-sync/pkg/auth"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Predictions is the interface for the prediction game service.
type Predictions interface {
	ListPinnedFixtures(c *gin.Context) ([]PinnedFixtureEntry, error)
	SavePrediction(c *gin.Context, userID string, fixtureID int, request PredictionRequest) (*Prediction, error)
	GetUserPredictions(c *gin.Context, userID string) (map[string]Prediction, error)
	GetLeaderboard(c *gin.Context) ([]LeaderboardEntry, error)
	GetUserScore(c *gin.Context, userID string) (*LeaderboardEntry, error)
	PinFixture(c *gin.Context, fixtureID int) error
	UnpinFixture(c *gin.Context, fixtureID int) error
	Recalculate(c *gin.Context) (*RunSummary, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Predictions

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler registers the user-facing prediction routes.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/fixtures", h.pinnedFixturesHandler)
	r.GET("/mine", h.userPredictionsHandler)
	r.POST("/fixture/:fixture_id", h.savePredictionHandler)
	r.GET("/leaderboard", h.leaderboardHandler)
	r.GET("/leaderboard/me", h.userScoreHandler)
}

// NewAdminHTTPHandler registers the admin-only prediction routes: pinning
// fixtures and triggering the scoring pipeline.
func NewAdminHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/predictions/pin/:fixture_id", h.pinHandler)
	r.DELETE("/predictions/pin/:fixture_id", h.unpinHandler)
	r.POST("/predictions/recalculate", h.recalculateHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) pinnedFixturesHandler(c *gin.Context) {
	entries, err := h.Service.ListPinnedFixtures(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixtures": entries})
}

func (h *httpHandler) userPredictionsHandler(c *gin.Context) {
	result, err := h.Service.GetUserPredictions(c, auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": result})
}

func (h *httpHandler) savePredictionHandler(c *gin.Context) {
	fixtureID, err := strconv.Atoi(c.Param("fixture_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fixture_id must be an integer"})
		c.Abort()
		return
	}

	var request PredictionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	prediction, err := h.Service.SavePrediction(c, auth.UserID(c), fixtureID, request)
	if err != nil {
		switch {
		case errors.Is(err, ErrFixtureNotPinned):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrPredictionClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"prediction": prediction})
}

func (h *httpHandler) leaderboardHandler(c *gin.Context) {
	entries, err := h.Service.GetLeaderboard(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

func (h *httpHandler) userScoreHandler(c *gin.Context) {
	entry, err := h.Service.GetUserScore(c, auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user is not ranked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": entry})
}

func (h *httpHandler) pinHandler(c *gin.Context) {
	fixtureID, err := strconv.Atoi(c.Param("fixture_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fixture_id must be an integer"})
		c.Abort()
		return
	}

	if err := h.Service.PinFixture(c, fixtureID); err != nil {
		if errors.Is(err, ErrFixtureNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fixture pinned for predictions"})
}

func (h *httpHandler) unpinHandler(c *gin.Context) {
	fixtureID, err := strconv.Atoi(c.Param("fixture_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fixture_id must be an integer"})
		c.Abort()
		return
	}

	if err := h.Service.UnpinFixture(c, fixtureID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fixture unpinned"})
}

func (h *httpHandler) recalculateHandler(c *gin.Context) {
	summary, err := h.Service.Recalculate(c)
	if err != nil {
		if errors.Is(err, ErrRecalculationInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			// The run aborted; nothing past the failed stage was written.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "recalculation did not complete, please retry"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Leaderboard updated",
		"summary": summary,
	})
}
