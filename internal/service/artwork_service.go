package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"media-catalog-api/internal/domain"
	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/response"
)

// PosterUploadExpiry is how long a presigned poster upload URL stays valid
const PosterUploadExpiry = 5 * time.Minute

// PosterStorage issues presigned uploads for artwork posters
type PosterStorage interface {
	PresignPosterUpload(ctx context.Context, artworkID uint, fileName, contentType string, expiry time.Duration) (uploadURL, key string, err error)
	GetFileURL(key string) string
}

// ArtworkService defines the business logic for artworks and their tags
type ArtworkService interface {
	CreateArtwork(ctx context.Context, categoryID uint, req *dto.CreateArtworkRequest) (*dto.ArtworkResponse, error)
	GetArtwork(ctx context.Context, id uint) (*dto.ArtworkResponse, error)
	ListArtworks(ctx context.Context, page dto.PaginationQuery) ([]*dto.ArtworkResponse, error)
	ListCategoryArtworks(ctx context.Context, categoryID uint) ([]dto.ArtworkSummaryResponse, error)
	UpdateArtwork(ctx context.Context, id uint, req *dto.UpdateArtworkRequest) (*dto.ArtworkResponse, error)
	DeleteArtwork(ctx context.Context, id uint) (*dto.ArtworkResponse, error)
	ListArtworkTags(ctx context.Context, id uint) ([]dto.TagSummaryResponse, error)
	AddTag(ctx context.Context, artworkID, tagID uint) (*dto.ArtworkResponse, error)
	RemoveTag(ctx context.Context, artworkID, tagID uint) (*dto.ArtworkResponse, error)
	CreatePosterUpload(ctx context.Context, artworkID uint, req *dto.PosterUploadRequest) (*dto.PosterUploadResponse, error)
}

type artworkServiceImpl struct {
	artworkRepo  repository.ArtworkRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	posters      PosterStorage
	recorder     EventRecorder
	logger       *zap.Logger
}

// NewArtworkService creates an ArtworkService. posters may be nil when object storage is not configured.
func NewArtworkService(
	artworkRepo repository.ArtworkRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	posters PosterStorage,
	recorder EventRecorder,
	logger *zap.Logger,
) ArtworkService {
	return &artworkServiceImpl{
		artworkRepo:  artworkRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		posters:      posters,
		recorder:     recorderOrNoop(recorder),
		logger:       logger,
	}
}

// CreateArtwork adds an artwork to an existing category
func (s *artworkServiceImpl) CreateArtwork(ctx context.Context, categoryID uint, req *dto.CreateArtworkRequest) (*dto.ArtworkResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, lookupError(s.logger, err, "Category not found")
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	artwork := &domain.Artwork{
		Title:       req.Title,
		Description: req.Description,
		PosterURL:   req.PosterURL,
		ReleaseDate: releaseDate,
		AgeRating:   req.AgeRating,
		StarRating:  req.StarRating,
		CategoryID:  categoryID,
	}
	if err := s.artworkRepo.Create(ctx, artwork); err != nil {
		return nil, writeError(s.logger, err, "Artwork already exists", "Failed to create artwork")
	}

	s.recorder.IncrementEntityCreated("artwork")
	s.logger.Info("Artwork created",
		zap.Uint("artwork_id", artwork.ID),
		zap.Uint("category_id", categoryID),
	)
	return toArtworkResponse(artwork), nil
}

func (s *artworkServiceImpl) GetArtwork(ctx context.Context, id uint) (*dto.ArtworkResponse, error) {
	artwork, err := s.artworkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}
	return toArtworkResponse(artwork), nil
}

func (s *artworkServiceImpl) ListArtworks(ctx context.Context, page dto.PaginationQuery) ([]*dto.ArtworkResponse, error) {
	page = page.Normalize()

	artworks, err := s.artworkRepo.FindAll(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list artworks", zap.Error(err))
		return nil, response.NewInternalError("Failed to list artworks", err)
	}

	responses := make([]*dto.ArtworkResponse, len(artworks))
	for i, a := range artworks {
		responses[i] = toArtworkResponse(a)
	}
	return responses, nil
}

func (s *artworkServiceImpl) ListCategoryArtworks(ctx context.Context, categoryID uint) ([]dto.ArtworkSummaryResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, lookupError(s.logger, err, "Category not found")
	}

	artworks, err := s.artworkRepo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		s.logger.Error("Failed to list category artworks", zap.Uint("category_id", categoryID), zap.Error(err))
		return nil, response.NewInternalError("Failed to list artworks", err)
	}

	responses := make([]dto.ArtworkSummaryResponse, len(artworks))
	for i, a := range artworks {
		responses[i] = toArtworkSummary(a)
	}
	return responses, nil
}

// UpdateArtwork applies only the supplied fields. The category cannot change.
func (s *artworkServiceImpl) UpdateArtwork(ctx context.Context, id uint, req *dto.UpdateArtworkRequest) (*dto.ArtworkResponse, error) {
	artwork, err := s.artworkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}

	if req.Title != nil {
		artwork.Title = *req.Title
	}
	if req.Description != nil {
		artwork.Description = *req.Description
	}
	if req.PosterURL != nil {
		artwork.PosterURL = *req.PosterURL
	}
	if req.ReleaseDate != nil {
		releaseDate, err := parseReleaseDate(*req.ReleaseDate)
		if err != nil {
			return nil, err
		}
		artwork.ReleaseDate = releaseDate
	}
	if req.AgeRating != nil {
		artwork.AgeRating = *req.AgeRating
	}
	if req.StarRating != nil {
		artwork.StarRating = *req.StarRating
	}

	if err := s.artworkRepo.Update(ctx, artwork); err != nil {
		s.logger.Error("Failed to update artwork", zap.Uint("artwork_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to update artwork", err)
	}
	return toArtworkResponse(artwork), nil
}

// DeleteArtwork removes the artwork with its comments, reviews and tag links
func (s *artworkServiceImpl) DeleteArtwork(ctx context.Context, id uint) (*dto.ArtworkResponse, error) {
	artwork, err := s.artworkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}

	if err := s.artworkRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete artwork", zap.Uint("artwork_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to delete artwork", err)
	}
	return toArtworkResponse(artwork), nil
}

func (s *artworkServiceImpl) ListArtworkTags(ctx context.Context, id uint) ([]dto.TagSummaryResponse, error) {
	if _, err := s.artworkRepo.FindByID(ctx, id); err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}

	tags, err := s.tagRepo.FindByArtworkID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to list artwork tags", zap.Uint("artwork_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to list tags", err)
	}

	summaries := make([]dto.TagSummaryResponse, 0, len(tags))
	for _, t := range tags {
		summaries = append(summaries, toTagSummary(t))
	}
	return summaries, nil
}

// AddTag attaches a tag. Attaching an already attached tag succeeds without change.
func (s *artworkServiceImpl) AddTag(ctx context.Context, artworkID, tagID uint) (*dto.ArtworkResponse, error) {
	if _, err := s.artworkRepo.FindByID(ctx, artworkID); err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}
	if _, err := s.tagRepo.FindByID(ctx, tagID); err != nil {
		return nil, lookupError(s.logger, err, "Tag not found")
	}

	if err := s.artworkRepo.AddTag(ctx, artworkID, tagID); err != nil {
		s.logger.Error("Failed to add tag",
			zap.Uint("artwork_id", artworkID),
			zap.Uint("tag_id", tagID),
			zap.Error(err),
		)
		return nil, response.NewInternalError("Failed to add tag", err)
	}

	return s.GetArtwork(ctx, artworkID)
}

// RemoveTag detaches a tag, failing with NOT_FOUND when it was not attached
func (s *artworkServiceImpl) RemoveTag(ctx context.Context, artworkID, tagID uint) (*dto.ArtworkResponse, error) {
	if _, err := s.artworkRepo.FindByID(ctx, artworkID); err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}

	removed, err := s.artworkRepo.RemoveTag(ctx, artworkID, tagID)
	if err != nil {
		s.logger.Error("Failed to remove tag",
			zap.Uint("artwork_id", artworkID),
			zap.Uint("tag_id", tagID),
			zap.Error(err),
		)
		return nil, response.NewInternalError("Failed to remove tag", err)
	}
	if !removed {
		return nil, response.NewNotFoundError("Tag is not attached to this artwork", "")
	}

	return s.GetArtwork(ctx, artworkID)
}

// CreatePosterUpload returns a presigned URL the client can PUT the poster image to
func (s *artworkServiceImpl) CreatePosterUpload(ctx context.Context, artworkID uint, req *dto.PosterUploadRequest) (*dto.PosterUploadResponse, error) {
	if s.posters == nil {
		return nil, response.NewAppError(response.ErrCodeUnavailable, "Poster storage is not configured", "")
	}
	if _, err := s.artworkRepo.FindByID(ctx, artworkID); err != nil {
		return nil, lookupError(s.logger, err, "Artwork not found")
	}

	uploadURL, key, err := s.posters.PresignPosterUpload(ctx, artworkID, req.FileName, req.ContentType, PosterUploadExpiry)
	if err != nil {
		s.logger.Error("Failed to presign poster upload", zap.Uint("artwork_id", artworkID), zap.Error(err))
		return nil, response.NewInternalError("Failed to create poster upload URL", err)
	}

	return &dto.PosterUploadResponse{
		UploadURL: uploadURL,
		PosterURL: s.posters.GetFileURL(key),
		Key:       key,
		ExpiresIn: int(PosterUploadExpiry.Seconds()),
	}, nil
}

func parseReleaseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return datatypes.Date{}, response.NewValidationError("release_date must be formatted as YYYY-MM-DD", err.Error())
	}
	return datatypes.Date(t), nil
}
