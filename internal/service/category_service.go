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

// CategoryService defines the business logic for categories
type CategoryService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context, page dto.PaginationQuery) ([]*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error)
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	recorder     EventRecorder
	logger       *zap.Logger
}

// NewCategoryService creates a CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository, recorder EventRecorder, logger *zap.Logger) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
		recorder:     recorderOrNoop(recorder),
		logger:       logger,
	}
}

// CreateCategory rejects names already used by another category
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := s.ensureNameAvailable(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, writeError(s.logger, err, categoryConflictMessage(req.Name), "Failed to create category")
	}

	s.recorder.IncrementEntityCreated("category")
	s.logger.Info("Category created", zap.Uint("category_id", category.ID), zap.String("name", category.Name))

	return toCategoryResponse(category), nil
}

func (s *categoryServiceImpl) GetCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Category not found")
	}
	return toCategoryResponse(category), nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, page dto.PaginationQuery) ([]*dto.CategoryResponse, error) {
	page = page.Normalize()

	categories, err := s.categoryRepo.FindAll(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, response.NewInternalError("Failed to list categories", err)
	}

	responses := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = toCategoryResponse(c)
	}
	return responses, nil
}

// UpdateCategory applies only the supplied fields
func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Category not found")
	}

	if req.Name != nil && *req.Name != category.Name {
		if err := s.ensureNameAvailable(ctx, *req.Name, category.ID); err != nil {
			return nil, err
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, writeError(s.logger, err, categoryConflictMessage(category.Name), "Failed to update category")
	}

	return toCategoryResponse(category), nil
}

// DeleteCategory removes the category with its artworks and returns what was deleted
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "Category not found")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete category", zap.Uint("category_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to delete category", err)
	}

	s.logger.Info("Category deleted",
		zap.Uint("category_id", id),
		zap.Int("artworks_removed", len(category.Artworks)),
	)
	return toCategoryResponse(category), nil
}

func (s *categoryServiceImpl) ensureNameAvailable(ctx context.Context, name string, selfID uint) error {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		s.logger.Error("Failed to check category name", zap.Error(err))
		return response.NewInternalError("Failed to check category name", err)
	}
	if existing != nil && existing.ID != selfID {
		return response.NewConflictError(categoryConflictMessage(name), "")
	}
	return nil
}

func categoryConflictMessage(name string) string {
	return fmt.Sprintf("Category with name '%s' already exists", name)
}
