package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"media-catalog-api/internal/domain"
)

// ReviewRepository defines data access for reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id uint) (*domain.Review, error)
	FindAll(ctx context.Context, offset, limit int) ([]*domain.Review, error)
	FindByArtworkID(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Review, error)
	FindByAuthorID(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Review, error)
	FindByAuthorAndArtwork(ctx context.Context, authorID, artworkID uint) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type reviewRepositoryImpl struct {
	db *gorm.DB
}

// NewReviewRepository creates a GORM backed ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

func (r *reviewRepositoryImpl) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}

func (r *reviewRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepositoryImpl) FindAll(ctx context.Context, offset, limit int) ([]*domain.Review, error) {
	var reviews []*domain.Review
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepositoryImpl) FindByArtworkID(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Review, error) {
	return r.findWhere(ctx, "artwork_id = ?", artworkID, offset, limit)
}

func (r *reviewRepositoryImpl) FindByAuthorID(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Review, error) {
	return r.findWhere(ctx, "author_id = ?", authorID, offset, limit)
}

func (r *reviewRepositoryImpl) findWhere(ctx context.Context, query string, arg interface{}, offset, limit int) ([]*domain.Review, error) {
	var reviews []*domain.Review
	if err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByAuthorAndArtwork returns nil without error when the user has not reviewed the artwork
func (r *reviewRepositoryImpl) FindByAuthorAndArtwork(ctx context.Context, authorID, artworkID uint) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).
		Where("author_id = ? AND artwork_id = ?", authorID, artworkID).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepositoryImpl) Update(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(review).Error
}

func (r *reviewRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Review{}, id).Error
}

func (r *reviewRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).Count(&count).Error
	return count, err
}
