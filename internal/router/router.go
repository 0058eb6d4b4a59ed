package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"media-catalog-api/internal/handler"
	"media-catalog-api/internal/metrics"
	"media-catalog-api/internal/middleware"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/response"
	"media-catalog-api/internal/service"
)

// TokenService signs and parses access tokens, implemented by auth.TokenService
type TokenService interface {
	service.TokenIssuer
	middleware.TokenParser
}

// Config holds router configuration
type Config struct {
	DB      *gorm.DB
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// MetricsHandler serves /metrics; promhttp.Handler() when nil
	MetricsHandler http.Handler
	Tokens         TokenService
	// Posters is nil when object storage is not configured
	Posters     service.PosterStorage
	RateLimiter *middleware.RateLimiter
	CORSOrigins []string
	BasePath    string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	// EventRecorder stays a nil interface when metrics are disabled
	var recorder service.EventRecorder
	if cfg.Metrics != nil {
		recorder = cfg.Metrics
	}

	categoryRepo := repository.NewCategoryRepository(cfg.DB)
	artworkRepo := repository.NewArtworkRepository(cfg.DB)
	userRepo := repository.NewUserRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	reviewRepo := repository.NewReviewRepository(cfg.DB)
	tagRepo := repository.NewTagRepository(cfg.DB)

	categoryService := service.NewCategoryService(categoryRepo, recorder, cfg.Logger)
	artworkService := service.NewArtworkService(artworkRepo, categoryRepo, tagRepo, cfg.Posters, recorder, cfg.Logger)
	userService := service.NewUserService(userRepo, recorder, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, userRepo, artworkRepo, recorder, cfg.Logger)
	reviewService := service.NewReviewService(reviewRepo, userRepo, artworkRepo, recorder, cfg.Logger)
	tagService := service.NewTagService(tagRepo, recorder, cfg.Logger)
	authService := service.NewAuthService(userService, cfg.Tokens, cfg.Logger)
	statsService := service.NewStatsService(service.StatsRepositories{
		Categories: categoryRepo,
		Artworks:   artworkRepo,
		Users:      userRepo,
		Comments:   commentRepo,
		Reviews:    reviewRepo,
		Tags:       tagRepo,
	}, cfg.Logger)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	artworkHandler := handler.NewArtworkHandler(artworkService, commentService, reviewService)
	userHandler := handler.NewUserHandler(userService, commentService, reviewService)
	commentHandler := handler.NewCommentHandler(commentService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	tagHandler := handler.NewTagHandler(tagService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(cfg.DB, statsService)

	// operational endpoints answer at the root and under the base path
	registerOps := func(g gin.IRoutes) {
		g.GET("/metrics", gin.WrapH(metricsHandler))
		g.GET("/health", healthHandler.Health)
		g.GET("/ready", healthHandler.Ready)
		g.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	registerOps(r)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		registerOps(api)
	}
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Handler())
	}

	api.GET("/stats", healthHandler.Stats)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", middleware.Auth(cfg.Tokens), authHandler.Me)
	}

	categories := api.Group("/categories")
	{
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id", categoryHandler.GetCategory)
		categories.PUT("/:id", categoryHandler.UpdateCategory)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
		categories.POST("/:id/artworks", artworkHandler.CreateArtwork)
		categories.GET("/:id/artworks", artworkHandler.ListCategoryArtworks)
	}

	artworks := api.Group("/artworks")
	{
		artworks.GET("", artworkHandler.ListArtworks)
		artworks.GET("/:id", artworkHandler.GetArtwork)
		artworks.PUT("/:id", artworkHandler.UpdateArtwork)
		artworks.DELETE("/:id", artworkHandler.DeleteArtwork)
		artworks.GET("/:id/comments", artworkHandler.ListArtworkComments)
		artworks.GET("/:id/reviews", artworkHandler.ListArtworkReviews)
		artworks.GET("/:id/tags", artworkHandler.ListArtworkTags)
		artworks.POST("/:id/tags/:tag_id", artworkHandler.AddTag)
		artworks.DELETE("/:id/tags/:tag_id", artworkHandler.RemoveTag)
		artworks.POST("/:id/poster-upload", artworkHandler.CreatePosterUpload)
	}

	users := api.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.GET("/:id/comments", userHandler.ListUserComments)
		users.POST("/:id/comments", userHandler.CreateComment)
		users.GET("/:id/reviews", userHandler.ListUserReviews)
		users.POST("/:id/reviews", userHandler.CreateReview)
	}

	comments := api.Group("/comments")
	{
		comments.GET("", commentHandler.ListComments)
		comments.GET("/:id", commentHandler.GetComment)
		comments.PUT("/:id", commentHandler.UpdateComment)
		comments.DELETE("/:id", commentHandler.DeleteComment)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewHandler.ListReviews)
		reviews.GET("/:id", reviewHandler.GetReview)
		reviews.PUT("/:id", reviewHandler.UpdateReview)
		reviews.DELETE("/:id", reviewHandler.DeleteReview)
	}

	tags := api.Group("/tags")
	{
		tags.POST("", tagHandler.CreateTag)
		tags.GET("", tagHandler.ListTags)
		tags.GET("/:id", tagHandler.GetTag)
		tags.PUT("/:id", tagHandler.UpdateTag)
		tags.DELETE("/:id", tagHandler.DeleteTag)
	}

	r.NoRoute(func(c *gin.Context) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Route not found")
	})

	return r
}
