package service

import (
	"context"

	"go.uber.org/zap"

	"media-catalog-api/internal/domain"
	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/response"
)

const reviewConflictMessage = "User has already reviewed this artwork"

// ReviewService defines the business logic for reviews
type ReviewService interface {
	CreateReview(ctx context.Context, authorID, artworkID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetReview(ctx context.Context, id uint) (*dto.ReviewResponse, error)
	ListReviews(ctx context.Context, page dto.PaginationQuery) ([]*dto.ReviewResponse, error)
	ListArtworkReviews(ctx context.Context, artworkID uint, page dto.PaginationQuery) ([]*dto.ReviewResponse, error)
	ListUserReviews(ctx context.Context, userID uint, page dto.PaginationQuery) ([]*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, id uint, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, id uint) (*dto.ReviewResponse, error)
}

type reviewServiceImpl struct {
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	artworkRepo repository.ArtworkRepository
	recorder    EventRecorder
	logger      *zap.Logger
}

// NewReviewService creates a ReviewService
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	artworkRepo repository.ArtworkRepository,
	recorder EventRecorder,
	logger *zap.Logger,
) ReviewService {
	return &reviewServiceImpl{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		artworkRepo: artworkRepo,
		recorder:    recorderOrNoop(recorder),
		logger:      logger,
	}
}

// CreateReview allows one review per user and artwork
func (s *reviewServiceImpl) CreateReview(ctx context.Context, authorID, artworkID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, authorID); err != nil {
		return nil, lookupError(s.logger, err, "User not found")
	}
	if _, err := s.artworkRepo.FindByID(ctx, artworkID); err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}

	existing, err := s.reviewRepo.FindByAuthorAndArtwork(ctx, authorID, artworkID)
	if err != nil {
		s.logger.Error("Failed to check existing review", zap.Error(err))
		return nil, response.NewInternalError("Failed to check existing review", err)
	}
	if existing != nil {
		return nil, response.NewConflictError(reviewConflictMessage, "")
	}

	review := &domain.Review{
		Text:      req.Text,
		Score:     req.Score,
		AuthorID:  authorID,
		ArtworkID: artworkID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, writeError(s.logger, err, reviewConflictMessage, "Failed to create review")
	}

	s.recorder.IncrementEntityCreated("review")
	return toReviewResponse(review), nil
}

func (s *reviewServiceImpl) GetReview(ctx context.Context, id uint) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Review not found")
	}
	return toReviewResponse(review), nil
}

func (s *reviewServiceImpl) ListReviews(ctx context.Context, page dto.PaginationQuery) ([]*dto.ReviewResponse, error) {
	page = page.Normalize()

	reviews, err := s.reviewRepo.FindAll(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		return nil, response.NewInternalError("Failed to list reviews", err)
	}
	return toReviewResponses(reviews), nil
}

func (s *reviewServiceImpl) ListArtworkReviews(ctx context.Context, artworkID uint, page dto.PaginationQuery) ([]*dto.ReviewResponse, error) {
	if _, err := s.artworkRepo.FindByID(ctx, artworkID); err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}

	page = page.Normalize()
	reviews, err := s.reviewRepo.FindByArtworkID(ctx, artworkID, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list artwork reviews", zap.Uint("artwork_id", artworkID), zap.Error(err))
		return nil, response.NewInternalError("Failed to list reviews", err)
	}
	return toReviewResponses(reviews), nil
}

func (s *reviewServiceImpl) ListUserReviews(ctx context.Context, userID uint, page dto.PaginationQuery) ([]*dto.ReviewResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, lookupError(s.logger, err, "User not found")
	}

	page = page.Normalize()
	reviews, err := s.reviewRepo.FindByAuthorID(ctx, userID, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list user reviews", zap.Uint("user_id", userID), zap.Error(err))
		return nil, response.NewInternalError("Failed to list reviews", err)
	}
	return toReviewResponses(reviews), nil
}

// UpdateReview applies only the supplied fields
func (s *reviewServiceImpl) UpdateReview(ctx context.Context, id uint, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Review not found")
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		s.logger.Error("Failed to update review", zap.Uint("review_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to update review", err)
	}
	return toReviewResponse(review), nil
}

func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id uint) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Review not found")
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete review", zap.Uint("review_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to delete review", err)
	}
	return toReviewResponse(review), nil
}

func toReviewResponses(reviews []*domain.Review) []*dto.ReviewResponse {
	responses := make([]*dto.ReviewResponse, len(reviews))
	for i, r := range reviews {
		responses[i] = toReviewResponse(r)
	}
	return responses
}
