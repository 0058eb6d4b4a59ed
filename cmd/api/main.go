// @title           Media Catalog API
// @version         1.0
// @description     Catalog of artworks, categories, tags, users, comments and reviews

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "media-catalog-api/docs" // Swagger docs import

	"media-catalog-api/internal/auth"
	"media-catalog-api/internal/client"
	"media-catalog-api/internal/config"
	"media-catalog-api/internal/database"
	"media-catalog-api/internal/job"
	"media-catalog-api/internal/metrics"
	"media-catalog-api/internal/middleware"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/router"
	"media-catalog-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Catalog API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	db, err := database.New(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("Database connected successfully")

	if err := database.SafeAutoMigrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	m := metrics.NewWithLogger(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	stopDBStats := database.StartDBStatsCollector(db, m, 15*time.Second)
	defer close(stopDBStats)
	logger.Info("Metrics initialized")

	routerCfg := router.Config{
		DB:          db,
		Logger:      logger,
		Metrics:     m,
		Tokens:      auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration),
		CORSOrigins: cfg.CORS.Origins(),
		BasePath:    cfg.Server.BasePath,
	}

	if cfg.S3.Enabled() {
		s3Client, err := client.NewS3Client(context.Background(), &cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, poster uploads disabled", zap.Error(err))
		} else {
			routerCfg.Posters = s3Client
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, poster uploads disabled")
	}

	stopLimiter := make(chan struct{})
	defer close(stopLimiter)
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger).
			Exempt(cfg.RateLimit.Exempt()...)
		limiter.StartCleanup(time.Minute, stopLimiter)
		routerCfg.RateLimiter = limiter
	}

	var scheduler *job.Scheduler
	if cfg.Stats.Enabled {
		statsService := service.NewStatsService(service.StatsRepositories{
			Categories: repository.NewCategoryRepository(db),
			Artworks:   repository.NewArtworkRepository(db),
			Users:      repository.NewUserRepository(db),
			Comments:   repository.NewCommentRepository(db),
			Reviews:    repository.NewReviewRepository(db),
			Tags:       repository.NewTagRepository(db),
		}, logger)
		statsJob := job.NewStatsJob(statsService, m, logger)

		scheduler = job.NewScheduler(logger)
		if err := scheduler.Add("catalog-stats", cfg.Stats.Schedule, statsJob); err != nil {
			logger.Fatal("Failed to schedule stats job", zap.Error(err))
		}
		statsJob.Run()
		scheduler.Start()
	}

	r := router.Setup(routerCfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Catalog API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if scheduler != nil {
		scheduler.Stop(ctx)
	}

	logger.Info("Server exited gracefully")
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
