package service

import (
	"context"

	"go.uber.org/zap"

	"media-catalog-api/internal/domain"
	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/response"
)

// CommentService defines the business logic for comments
type CommentService interface {
	CreateComment(ctx context.Context, authorID, artworkID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComment(ctx context.Context, id uint) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, page dto.PaginationQuery) ([]*dto.CommentResponse, error)
	ListArtworkComments(ctx context.Context, artworkID uint, page dto.PaginationQuery) ([]*dto.CommentResponse, error)
	ListUserComments(ctx context.Context, userID uint, page dto.PaginationQuery) ([]*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, id uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, id uint) (*dto.CommentResponse, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	artworkRepo repository.ArtworkRepository
	recorder    EventRecorder
	logger      *zap.Logger
}

// NewCommentService creates a CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	artworkRepo repository.ArtworkRepository,
	recorder EventRecorder,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		artworkRepo: artworkRepo,
		recorder:    recorderOrNoop(recorder),
		logger:      logger,
	}
}

// CreateComment requires both the author and the artwork to exist
func (s *commentServiceImpl) CreateComment(ctx context.Context, authorID, artworkID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, authorID); err != nil {
		return nil, lookupError(s.logger, err, "User not found")
	}
	if _, err := s.artworkRepo.FindByID(ctx, artworkID); err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}

	comment := &domain.Comment{
		Text:      req.Text,
		Likes:     req.Likes,
		Dislikes:  req.Dislikes,
		AuthorID:  authorID,
		ArtworkID: artworkID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("Failed to create comment", zap.Error(err))
		return nil, response.NewInternalError("Failed to create comment", err)
	}

	s.recorder.IncrementEntityCreated("comment")
	return toCommentResponse(comment), nil
}

func (s *commentServiceImpl) GetComment(ctx context.Context, id uint) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Comment not found")
	}
	return toCommentResponse(comment), nil
}

func (s *commentServiceImpl) ListComments(ctx context.Context, page dto.PaginationQuery) ([]*dto.CommentResponse, error) {
	page = page.Normalize()

	comments, err := s.commentRepo.FindAll(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list comments", zap.Error(err))
		return nil, response.NewInternalError("Failed to list comments", err)
	}
	return toCommentResponses(comments), nil
}

func (s *commentServiceImpl) ListArtworkComments(ctx context.Context, artworkID uint, page dto.PaginationQuery) ([]*dto.CommentResponse, error) {
	if _, err := s.artworkRepo.FindByID(ctx, artworkID); err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}

	page = page.Normalize()
	comments, err := s.commentRepo.FindByArtworkID(ctx, artworkID, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list artwork comments", zap.Uint("artwork_id", artworkID), zap.Error(err))
		return nil, response.NewInternalError("Failed to list comments", err)
	}
	return toCommentResponses(comments), nil
}

func (s *commentServiceImpl) ListUserComments(ctx context.Context, userID uint, page dto.PaginationQuery) ([]*dto.CommentResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, lookupError(s.logger, err, "User not found")
	}

	page = page.Normalize()
	comments, err := s.commentRepo.FindByAuthorID(ctx, userID, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list user comments", zap.Uint("user_id", userID), zap.Error(err))
		return nil, response.NewInternalError("Failed to list comments", err)
	}
	return toCommentResponses(comments), nil
}

// UpdateComment applies only the supplied fields
func (s *commentServiceImpl) UpdateComment(ctx context.Context, id uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Comment not found")
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}
	if req.Likes != nil {
		comment.Likes = *req.Likes
	}
	if req.Dislikes != nil {
		comment.Dislikes = *req.Dislikes
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		s.logger.Error("Failed to update comment", zap.Uint("comment_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to update comment", err)
	}
	return toCommentResponse(comment), nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, id uint) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Comment not found")
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete comment", zap.Uint("comment_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to delete comment", err)
	}
	return toCommentResponse(comment), nil
}

func toCommentResponses(comments []*domain.Comment) []*dto.CommentResponse {
	responses := make([]*dto.CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = toCommentResponse(c)
	}
	return responses
}
