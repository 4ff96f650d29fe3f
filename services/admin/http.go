package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	auth "github.com/nabdalmalaeb/score-sync/pkg/auth"
	resend "github.com/nabdalmalaeb/score-sync/repos/resend"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Admin is the interface for the admin service.
type Admin interface {
	ListCustomizations(c *gin.Context) (map[string]map[string]string, error)
	SetCustomization(c *gin.Context, kind, entityID, customName string) error
	DeleteCustomization(c *gin.Context, kind, entityID string) error
	GetDashboardStats(c *gin.Context) (*DashboardStats, error)
	RequestInvite(c *gin.Context, email string) error
	RedeemInvite(c *gin.Context, code, userID string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Admin

	// AdminRouter carries the admin-gated routes.
	AdminRouter Router

	// AccessRouter carries authenticated routes open to non-admins, such
	// as redeeming an invite.
	AccessRouter Router

	// PublicRouter carries the unauthenticated read routes.
	PublicRouter Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.AdminRouter.POST("/customizations/:kind/:entity_id", h.setCustomizationHandler)
	opts.AdminRouter.DELETE("/customizations/:kind/:entity_id", h.deleteCustomizationHandler)
	opts.AdminRouter.GET("/stats", h.statsHandler)
	opts.AdminRouter.POST("/invite", h.inviteHandler)
	opts.AccessRouter.GET("/invite/:invite_code", h.redeemHandler)
	opts.PublicRouter.GET("/customizations", h.listCustomizationsHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) listCustomizationsHandler(c *gin.Context) {
	customizations, err := h.Service.ListCustomizations(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, customizations)
}

func (h *httpHandler) setCustomizationHandler(c *gin.Context) {
	var request CustomizationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	err := h.Service.SetCustomization(c, c.Param("kind"), c.Param("entity_id"), request.CustomName)
	if err != nil {
		if errors.Is(err, ErrUnknownKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customization saved"})
}

func (h *httpHandler) deleteCustomizationHandler(c *gin.Context) {
	err := h.Service.DeleteCustomization(c, c.Param("kind"), c.Param("entity_id"))
	if err != nil {
		if errors.Is(err, ErrUnknownKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customization removed"})
}

func (h *httpHandler) statsHandler(c *gin.Context) {
	stats, err := h.Service.GetDashboardStats(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *httpHandler) inviteHandler(c *gin.Context) {
	var request resend.InviteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	if request.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		c.Abort()
		return
	}

	if err := h.Service.RequestInvite(c, request.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send invite"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invite sent", "email": request.Email})
}

func (h *httpHandler) redeemHandler(c *gin.Context) {
	err := h.Service.RedeemInvite(c, c.Param("invite_code"), auth.UserID(c))
	if err != nil {
		if errors.Is(err, ErrInvalidInvite) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin access granted"})
}
