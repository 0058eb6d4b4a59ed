package job

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"media-catalog-api/internal/dto"
)

// MockStatsService is a mock implementation of service.StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Stats(ctx context.Context) (*dto.CatalogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CatalogStats), args.Error(1)
}

type recordingPublisher struct {
	mu        sync.Mutex
	stats     []*dto.CatalogStats
	refreshes []error
}

func (p *recordingPublisher) SetCatalogStats(stats *dto.CatalogStats) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats = append(p.stats, stats)
}

func (p *recordingPublisher) RecordStatsRefresh(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refreshes = append(p.refreshes, err)
}

func (p *recordingPublisher) runs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.refreshes)
}

func TestStatsJob_Run_PublishesStats(t *testing.T) {
	statsService := new(MockStatsService)
	publisher := &recordingPublisher{}
	stats := &dto.CatalogStats{Categories: 2, Artworks: 5, Users: 3, Comments: 7, Reviews: 4, Tags: 1}
	statsService.On("Stats", mock.Anything).Return(stats, nil)

	NewStatsJob(statsService, publisher, zap.NewNop()).Run()

	statsService.AssertExpectations(t)
	require.Len(t, publisher.stats, 1)
	assert.Equal(t, stats, publisher.stats[0])
	assert.Equal(t, []error{nil}, publisher.refreshes)
}

func TestStatsJob_Run_Failure(t *testing.T) {
	statsService := new(MockStatsService)
	publisher := &recordingPublisher{}
	core, logs := observer.New(zap.ErrorLevel)
	failure := errors.New("database is locked")
	statsService.On("Stats", mock.Anything).Return(nil, failure)

	NewStatsJob(statsService, publisher, zap.New(core)).Run()

	assert.Empty(t, publisher.stats)
	assert.Equal(t, []error{failure}, publisher.refreshes)
	assert.Equal(t, 1, logs.FilterMessage("Failed to refresh catalog stats").Len())
}

func TestStatsJob_Run_UsesDeadline(t *testing.T) {
	statsService := new(MockStatsService)
	statsService.On("Stats", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(&dto.CatalogStats{}, nil)

	NewStatsJob(statsService, &recordingPublisher{}, zap.NewNop()).Run()

	statsService.AssertExpectations(t)
}

func TestScheduler_RejectsInvalidSpec(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	err := s.Add("stats", "not a schedule", NewStatsJob(new(MockStatsService), &recordingPublisher{}, zap.NewNop()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats")
}

func TestScheduler_RunsJob(t *testing.T) {
	statsService := new(MockStatsService)
	statsService.On("Stats", mock.Anything).Return(&dto.CatalogStats{Tags: 1}, nil)
	publisher := &recordingPublisher{}

	s := NewScheduler(zap.NewNop())
	require.NoError(t, s.Add("stats", "@every 1s", NewStatsJob(statsService, publisher, zap.NewNop())))
	s.Start()

	require.Eventually(t, func() bool { return publisher.runs() > 0 }, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}

func TestScheduler_RecoversFromPanic(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	s := NewScheduler(zap.New(core))
	require.NoError(t, s.Add("stats", "@every 1s", NewStatsJob(nil, &recordingPublisher{}, zap.NewNop())))
	s.Start()

	require.Eventually(t, func() bool { return logs.FilterMessage("panic").Len() > 0 }, 5*time.Second, 50*time.Millisecond)
	s.Stop(context.Background())
}
