package service

import (
	"context"

	"go.uber.org/zap"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/response"
)

// StatsService reports catalog row counts
type StatsService interface {
	Stats(ctx context.Context) (*dto.CatalogStats, error)
}

// StatsRepositories groups the repositories counted by StatsService
type StatsRepositories struct {
	Categories repository.CategoryRepository
	Artworks   repository.ArtworkRepository
	Users      repository.UserRepository
	Comments   repository.CommentRepository
	Reviews    repository.ReviewRepository
	Tags       repository.TagRepository
}

type counter func(context.Context) (int64, error)

type statsServiceImpl struct {
	repos  StatsRepositories
	logger *zap.Logger
}

// NewStatsService creates a StatsService
func NewStatsService(repos StatsRepositories, logger *zap.Logger) StatsService {
	return &statsServiceImpl{repos: repos, logger: logger}
}

func (s *statsServiceImpl) Stats(ctx context.Context) (*dto.CatalogStats, error) {
	stats := &dto.CatalogStats{}

	counts := []struct {
		table string
		count counter
		dst   *int64
	}{
		{"categories", s.repos.Categories.Count, &stats.Categories},
		{"artworks", s.repos.Artworks.Count, &stats.Artworks},
		{"users", s.repos.Users.Count, &stats.Users},
		{"comments", s.repos.Comments.Count, &stats.Comments},
		{"reviews", s.repos.Reviews.Count, &stats.Reviews},
		{"tags", s.repos.Tags.Count, &stats.Tags},
	}

	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			s.logger.Error("Failed to count rows", zap.String("table", c.table), zap.Error(err))
			return nil, response.NewInternalError("Failed to compute catalog stats", err)
		}
		*c.dst = n
	}
	return stats, nil
}
