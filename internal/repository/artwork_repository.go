package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"media-catalog-api/internal/domain"
)

// ArtworkRepository defines data access for artworks and their tag links
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *domain.Artwork) error
	FindByID(ctx context.Context, id uint) (*domain.Artwork, error)
	FindAll(ctx context.Context, offset, limit int) ([]*domain.Artwork, error)
	FindByCategoryID(ctx context.Context, categoryID uint) ([]*domain.Artwork, error)
	Update(ctx context.Context, artwork *domain.Artwork) error
	Delete(ctx context.Context, id uint) error
	AddTag(ctx context.Context, artworkID, tagID uint) error
	RemoveTag(ctx context.Context, artworkID, tagID uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type artworkRepositoryImpl struct {
	db *gorm.DB
}

// NewArtworkRepository creates a GORM backed ArtworkRepository
func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &artworkRepositoryImpl{db: db}
}

func (r *artworkRepositoryImpl) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Comments", orderByID).
		Preload("Reviews", orderByID).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.id ASC")
		})
}

func (r *artworkRepositoryImpl) Create(ctx context.Context, artwork *domain.Artwork) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(artwork).Error
}

// FindByID returns the artwork with comments, reviews and tags
func (r *artworkRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Artwork, error) {
	var artwork domain.Artwork
	if err := r.withRelations(ctx).First(&artwork, id).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (r *artworkRepositoryImpl) FindAll(ctx context.Context, offset, limit int) ([]*domain.Artwork, error) {
	var artworks []*domain.Artwork
	if err := r.withRelations(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *artworkRepositoryImpl) FindByCategoryID(ctx context.Context, categoryID uint) ([]*domain.Artwork, error) {
	var artworks []*domain.Artwork
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *artworkRepositoryImpl) Update(ctx context.Context, artwork *domain.Artwork) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(artwork).Error
}

// Delete removes the artwork; comments, reviews and tag links cascade
func (r *artworkRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Artwork{}, id).Error
}

// AddTag links a tag to an artwork. Linking twice is a no-op.
func (r *artworkRepositoryImpl) AddTag(ctx context.Context, artworkID, tagID uint) error {
	return r.db.WithContext(ctx).
		Table(domain.ArtworkTagTable).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]interface{}{
			"artwork_id": artworkID,
			"tag_id":     tagID,
		}).Error
}

// RemoveTag unlinks a tag and reports whether a link existed
func (r *artworkRepositoryImpl) RemoveTag(ctx context.Context, artworkID, tagID uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		"DELETE FROM "+domain.ArtworkTagTable+" WHERE artwork_id = ? AND tag_id = ?",
		artworkID, tagID,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *artworkRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Artwork{}).Count(&count).Error
	return count, err
}
