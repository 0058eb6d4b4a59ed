package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/service"
)

// StatsPublisher receives catalog statistics, implemented by *metrics.Metrics
type StatsPublisher interface {
	SetCatalogStats(stats *dto.CatalogStats)
	RecordStatsRefresh(err error)
}

// StatsJob refreshes the catalog row-count gauges
type StatsJob struct {
	statsService service.StatsService
	publisher    StatsPublisher
	timeout      time.Duration
	logger       *zap.Logger
}

// NewStatsJob creates a new StatsJob instance
func NewStatsJob(statsService service.StatsService, publisher StatsPublisher, logger *zap.Logger) *StatsJob {
	return &StatsJob{
		statsService: statsService,
		publisher:    publisher,
		timeout:      5 * time.Second,
		logger:       logger,
	}
}

// Run executes the job. It satisfies cron.Job.
func (j *StatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	stats, err := j.statsService.Stats(ctx)
	j.publisher.RecordStatsRefresh(err)
	if err != nil {
		j.logger.Error("Failed to refresh catalog stats", zap.Error(err))
		return
	}

	j.publisher.SetCatalogStats(stats)
	j.logger.Debug("Catalog stats refreshed",
		zap.Int64("categories", stats.Categories),
		zap.Int64("artworks", stats.Artworks),
		zap.Int64("users", stats.Users),
		zap.Int64("comments", stats.Comments),
		zap.Int64("reviews", stats.Reviews),
		zap.Int64("tags", stats.Tags),
	)
}
