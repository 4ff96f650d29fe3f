package favorites

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	auth "github.com/nabdalmalaeb/score-sync/pkg/auth"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// FavoritesAPI is the interface for the favorites service.
type FavoritesAPI interface {
	GetFavorites(c *gin.Context, userID string) (*Favorites, error)
	SetFavorites(c *gin.Context, userID string, favorites Favorites) error
	SetCrownedTeam(c *gin.Context, userID string, team CrownedTeam) error
	RemoveCrownedTeam(c *gin.Context, userID string, teamID int) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service FavoritesAPI

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/", h.getHandler)
	r.PUT("/", h.setHandler)
	r.PUT("/crowned", h.crownHandler)
	r.DELETE("/crowned/:team_id", h.uncrownHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) getHandler(c *gin.Context) {
	favorites, err := h.Service.GetFavorites(c, auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *httpHandler) setHandler(c *gin.Context) {
	var favorites Favorites
	if err := c.ShouldBindJSON(&favorites); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := h.Service.SetFavorites(c, auth.UserID(c), favorites); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorites saved"})
}

func (h *httpHandler) crownHandler(c *gin.Context) {
	var team CrownedTeam
	if err := c.ShouldBindJSON(&team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	if team.TeamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "teamId is required"})
		c.Abort()
		return
	}

	if err := h.Service.SetCrownedTeam(c, auth.UserID(c), team); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team crowned"})
}

func (h *httpHandler) uncrownHandler(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id must be an integer"})
		c.Abort()
		return
	}

	if err := h.Service.RemoveCrownedTeam(c, auth.UserID(c), teamID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team uncrowned"})
}
