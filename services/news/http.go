package news

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// News is the interface for the news service.
type News interface {
	ListArticles(c *gin.Context) ([]Article, error)
	PublishArticle(c *gin.Context, request ArticleRequest) (*Article, error)
	DeleteArticle(c *gin.Context, articleID string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service News

	// The router to register the endpoints to.
	Router Router
}

// NewHTTPHandler registers the public feed route.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.GET("/", h.listHandler)
}

// NewAdminHTTPHandler registers the publish and delete routes.
func NewAdminHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.POST("/news", h.publishHandler)
	opts.Router.DELETE("/news/:article_id", h.deleteHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) listHandler(c *gin.Context) {
	articles, err := h.Service.ListArticles(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *httpHandler) publishHandler(c *gin.Context) {
	var request ArticleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	article, err := h.Service.PublishArticle(c, request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *httpHandler) deleteHandler(c *gin.Context) {
	err := h.Service.DeleteArticle(c, c.Param("article_id"))
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}
