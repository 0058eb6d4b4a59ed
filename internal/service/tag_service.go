package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"media-catalog-api/internal/domain"
	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/response"
)

// TagService defines the business logic for tags
type TagService interface {
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	GetTag(ctx context.Context, id uint) (*dto.TagResponse, error)
	ListTags(ctx context.Context, page dto.PaginationQuery) ([]*dto.TagResponse, error)
	UpdateTag(ctx context.Context, id uint, req *dto.UpdateTagRequest) (*dto.TagResponse, error)
	DeleteTag(ctx context.Context, id uint) (*dto.TagResponse, error)
}

type tagServiceImpl struct {
	tagRepo  repository.TagRepository
	recorder EventRecorder
	logger   *zap.Logger
}

// NewTagService creates a TagService
func NewTagService(tagRepo repository.TagRepository, recorder EventRecorder, logger *zap.Logger) TagService {
	return &tagServiceImpl{
		tagRepo:  tagRepo,
		recorder: recorderOrNoop(recorder),
		logger:   logger,
	}
}

func (s *tagServiceImpl) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	if err := s.ensureNameAvailable(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	tag := &domain.Tag{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, writeError(s.logger, err, tagConflictMessage(req.Name), "Failed to create tag")
	}

	s.recorder.IncrementEntityCreated("tag")
	return toTagResponse(tag), nil
}

func (s *tagServiceImpl) GetTag(ctx context.Context, id uint) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Tag not found")
	}
	return toTagResponse(tag), nil
}

func (s *tagServiceImpl) ListTags(ctx context.Context, page dto.PaginationQuery) ([]*dto.TagResponse, error) {
	page = page.Normalize()

	tags, err := s.tagRepo.FindAll(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list tags", zap.Error(err))
		return nil, response.NewInternalError("Failed to list tags", err)
	}

	responses := make([]*dto.TagResponse, len(tags))
	for i, t := range tags {
		responses[i] = toTagResponse(t)
	}
	return responses, nil
}

func (s *tagServiceImpl) UpdateTag(ctx context.Context, id uint, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Tag not found")
	}

	if req.Name != nil && *req.Name != tag.Name {
		if err := s.ensureNameAvailable(ctx, *req.Name, tag.ID); err != nil {
			return nil, err
		}
		tag.Name = *req.Name
	}
	if req.Description != nil {
		tag.Description = *req.Description
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, writeError(s.logger, err, tagConflictMessage(tag.Name), "Failed to update tag")
	}
	return toTagResponse(tag), nil
}

// DeleteTag removes the tag and detaches it from every artwork
func (s *tagServiceImpl) DeleteTag(ctx context.Context, id uint) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Tag not found")
	}

	if err := s.tagRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete tag", zap.Uint("tag_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to delete tag", err)
	}
	return toTagResponse(tag), nil
}

func (s *tagServiceImpl) ensureNameAvailable(ctx context.Context, name string, selfID uint) error {
	existing, err := s.tagRepo.FindByName(ctx, name)
	if err != nil {
		s.logger.Error("Failed to check tag name", zap.Error(err))
		return response.NewInternalError("Failed to check tag name", err)
	}
	if existing != nil && existing.ID != selfID {
		return response.NewConflictError(tagConflictMessage(name), "")
	}
	return nil
}

func tagConflictMessage(name string) string {
	return fmt.Sprintf("Tag with name '%s' already exists", name)
}
