package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"media-catalog-api/internal/domain"
)

// CommentRepository defines data access for comments
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uint) (*domain.Comment, error)
	FindAll(ctx context.Context, offset, limit int) ([]*domain.Comment, error)
	FindByArtworkID(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Comment, error)
	FindByAuthorID(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a GORM backed CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepositoryImpl) FindAll(ctx context.Context, offset, limit int) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepositoryImpl) FindByArtworkID(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Comment, error) {
	return r.findWhere(ctx, "artwork_id = ?", artworkID, offset, limit)
}

func (r *commentRepositoryImpl) FindByAuthorID(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Comment, error) {
	return r.findWhere(ctx, "author_id = ?", authorID, offset, limit)
}

func (r *commentRepositoryImpl) findWhere(ctx context.Context, query string, arg interface{}, offset, limit int) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(comment).Error
}

func (r *commentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Comment{}, id).Error
}

func (r *commentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Comment{}).Count(&count).Error
	return count, err
}
