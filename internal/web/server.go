package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"media-catalog-api/internal/client"
	"media-catalog-api/internal/metrics"
	"media-catalog-api/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageSize = 20
	// selectLimit bounds the option lists of artwork and tag selects
	selectLimit = 1000
)

// API is the subset of the catalog client the pages use, implemented by *client.CatalogClient
type API interface {
	Get(ctx context.Context, path string, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string, out interface{}) error
}

// Config holds web frontend configuration
type Config struct {
	API     API
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// MetricsHandler serves /metrics; promhttp.Handler() when nil
	MetricsHandler http.Handler
}

// Server renders catalog pages backed by the catalog API
type Server struct {
	api    API
	logger *zap.Logger
}

// ParseTemplates parses the embedded page templates
func ParseTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Setup builds the frontend engine
func Setup(cfg Config) (*gin.Engine, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s := &Server{api: cfg.API, logger: cfg.Logger}
	s.routes(r)

	r.NoRoute(func(c *gin.Context) {
		s.renderError(c, http.StatusNotFound, "Page not found")
	})

	return r, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.home)

	categories := r.Group("/categories")
	{
		categories.GET("", s.listCategories)
		categories.GET("/new", s.newCategoryForm)
		categories.POST("", s.createCategory)
		categories.GET("/:id", s.showCategory)
		categories.GET("/:id/edit", s.editCategoryForm)
		categories.POST("/:id", s.updateCategory)
		categories.POST("/:id/delete", s.deleteCategory)
		categories.GET("/:id/artworks/new", s.newArtworkForm)
		categories.POST("/:id/artworks", s.createArtwork)
	}

	artworks := r.Group("/artworks")
	{
		artworks.GET("", s.listArtworks)
		artworks.GET("/:id", s.showArtwork)
		artworks.GET("/:id/edit", s.editArtworkForm)
		artworks.POST("/:id", s.updateArtwork)
		artworks.POST("/:id/delete", s.deleteArtwork)
		artworks.POST("/:id/tags", s.attachTag)
		artworks.POST("/:id/tags/:tag_id/delete", s.detachTag)
	}

	users := r.Group("/users")
	{
		users.GET("", s.listUsers)
		users.GET("/new", s.newUserForm)
		users.POST("", s.createUser)
		users.GET("/:id", s.showUser)
		users.GET("/:id/edit", s.editUserForm)
		users.POST("/:id", s.updateUser)
		users.POST("/:id/delete", s.deleteUser)
		users.GET("/:id/comments", s.userComments)
		users.POST("/:id/comments", s.createComment)
		users.GET("/:id/reviews", s.userReviews)
		users.POST("/:id/reviews", s.createReview)
	}

	comments := r.Group("/comments")
	{
		comments.GET("", s.listComments)
		comments.GET("/:id", s.showComment)
		comments.GET("/:id/edit", s.editCommentForm)
		comments.POST("/:id", s.updateComment)
		comments.POST("/:id/delete", s.deleteComment)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", s.listReviews)
		reviews.GET("/:id", s.showReview)
		reviews.GET("/:id/edit", s.editReviewForm)
		reviews.POST("/:id", s.updateReview)
		reviews.POST("/:id/delete", s.deleteReview)
	}

	tags := r.Group("/tags")
	{
		tags.GET("", s.listTags)
		tags.GET("/new", s.newTagForm)
		tags.POST("", s.createTag)
		tags.GET("/:id", s.showTag)
		tags.GET("/:id/edit", s.editTagForm)
		tags.POST("/:id", s.updateTag)
		tags.POST("/:id/delete", s.deleteTag)
	}
}

func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"Title": "Media Catalog"})
}

// render writes a page with the common Title field set
func render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	c.HTML(status, name, data)
}

func (s *Server) renderError(c *gin.Context, status int, message string) {
	render(c, status, "error.html", http.StatusText(status), gin.H{
		"Status":  status,
		"Message": message,
	})
}

// apiFailure maps a client error to the status and message shown to the user
func (s *Server) apiFailure(c *gin.Context, err error) (int, string) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr.Message
	}
	var formErr *formError
	if errors.As(err, &formErr) {
		return http.StatusBadRequest, formErr.Error()
	}
	s.logger.Error("Catalog API unavailable",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	return http.StatusBadGateway, "The catalog service is unavailable, try again later"
}

// fail renders the error page for a failed API call
func (s *Server) fail(c *gin.Context, err error) {
	status, message := s.apiFailure(c, err)
	s.renderError(c, status, message)
}

// renderForm re-renders a form with the API error shown above it
func (s *Server) renderForm(c *gin.Context, err error, name, title string, data gin.H) {
	status, message := s.apiFailure(c, err)
	if data == nil {
		data = gin.H{}
	}
	data["Error"] = message
	render(c, status, name, title, data)
}

// bindForm decodes the posted form into form, rendering 400 when the body cannot be read
func (s *Server) bindForm(c *gin.Context, form interface{}) bool {
	if err := c.ShouldBind(form); err != nil {
		s.logger.Debug("Failed to bind form",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		s.renderError(c, http.StatusBadRequest, "The submitted form could not be read")
		return false
	}
	return true
}

// postedFields reports whether the submitted form carried an input
func postedFields(c *gin.Context) fieldSent {
	return func(key string) bool {
		_, ok := c.GetPostForm(key)
		return ok
	}
}

func redirect(c *gin.Context, segments ...interface{}) {
	c.Redirect(http.StatusSeeOther, client.Path(nil, segments...))
}

// pathID parses a positive id route parameter, rendering 400 when it is invalid
func (s *Server) pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		s.renderError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

type page struct {
	Skip  int
	Limit int
}

func (p page) query() url.Values {
	return url.Values{
		"skip":  {strconv.Itoa(p.Skip)},
		"limit": {strconv.Itoa(p.Limit)},
	}
}

func currentPage(c *gin.Context) page {
	p := page{Limit: pageSize}
	if skip, err := strconv.Atoi(c.Query("skip")); err == nil && skip > 0 {
		p.Skip = skip
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit <= selectLimit {
		p.Limit = limit
	}
	return p
}

// listData builds the template data of a paginated list page
func listData(p page, items interface{}, count int) gin.H {
	prev := p.Skip - p.Limit
	if prev < 0 {
		prev = 0
	}
	return gin.H{
		"Items":    items,
		"Limit":    p.Limit,
		"HasPrev":  p.Skip > 0,
		"PrevSkip": prev,
		"HasNext":  count == p.Limit,
		"NextSkip": p.Skip + p.Limit,
	}
}
