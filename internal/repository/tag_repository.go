package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"media-catalog-api/internal/domain"
)

// TagRepository defines data access for tags
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	FindByID(ctx context.Context, id uint) (*domain.Tag, error)
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
	FindAll(ctx context.Context, offset, limit int) ([]*domain.Tag, error)
	FindByArtworkID(ctx context.Context, artworkID uint) ([]*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type tagRepositoryImpl struct {
	db *gorm.DB
}

// NewTagRepository creates a GORM backed TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepositoryImpl{db: db}
}

func preloadTagArtworks(db *gorm.DB) *gorm.DB {
	return db.Preload("Artworks", func(db *gorm.DB) *gorm.DB {
		return db.Order("artworks.id ASC")
	})
}

func (r *tagRepositoryImpl) Create(ctx context.Context, tag *domain.Tag) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(tag).Error
}

// FindByID returns the tag with the artworks carrying it
func (r *tagRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Tag, error) {
	var tag domain.Tag
	if err := preloadTagArtworks(r.db.WithContext(ctx)).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByName returns nil without error when no tag has the name
func (r *tagRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	var tag domain.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepositoryImpl) FindAll(ctx context.Context, offset, limit int) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	if err := preloadTagArtworks(r.db.WithContext(ctx)).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepositoryImpl) FindByArtworkID(ctx context.Context, artworkID uint) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	if err := r.db.WithContext(ctx).
		Joins("JOIN "+domain.ArtworkTagTable+" ON "+domain.ArtworkTagTable+".tag_id = tags.id").
		Where(domain.ArtworkTagTable+".artwork_id = ?", artworkID).
		Order("tags.id ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepositoryImpl) Update(ctx context.Context, tag *domain.Tag) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(tag).Error
}

// Delete removes the tag; its artwork links cascade
func (r *tagRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Tag{}, id).Error
}

func (r *tagRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Tag{}).Count(&count).Error
	return count, err
}
