package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"media-catalog-api/internal/domain"
	"media-catalog-api/internal/response"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	CreateFunc     func(ctx context.Context, category *domain.Category) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Category, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Category, error)
	FindAllFunc    func(ctx context.Context, offset, limit int) ([]*domain.Category, error)
	UpdateFunc     func(ctx context.Context, category *domain.Category) error
	DeleteFunc     func(ctx context.Context, id uint) error
	CountFunc      func(ctx context.Context) (int64, error)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	CreateFunc          func(ctx context.Context, tag *domain.Tag) error
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Tag, error)
	FindByNameFunc      func(ctx context.Context, name string) (*domain.Tag, error)
	FindAllFunc         func(ctx context.Context, offset, limit int) ([]*domain.Tag, error)
	FindByArtworkIDFunc func(ctx context.Context, artworkID uint) ([]*domain.Tag, error)
	UpdateFunc          func(ctx context.Context, tag *domain.Tag) error
	DeleteFunc          func(ctx context.Context, id uint) error
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uint) (*domain.Tag, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockTagRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Tag, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByArtworkID(ctx context.Context, artworkID uint) ([]*domain.Tag, error) {
	if m.FindByArtworkIDFunc != nil {
		return m.FindByArtworkIDFunc(ctx, artworkID)
	}
	return nil, nil
}

func (m *MockTagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTagRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockArtworkRepository is a mock implementation of ArtworkRepository
type MockArtworkRepository struct {
	CreateFunc           func(ctx context.Context, artwork *domain.Artwork) error
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.Artwork, error)
	FindAllFunc          func(ctx context.Context, offset, limit int) ([]*domain.Artwork, error)
	FindByCategoryIDFunc func(ctx context.Context, categoryID uint) ([]*domain.Artwork, error)
	UpdateFunc           func(ctx context.Context, artwork *domain.Artwork) error
	DeleteFunc           func(ctx context.Context, id uint) error
	AddTagFunc           func(ctx context.Context, artworkID, tagID uint) error
	RemoveTagFunc        func(ctx context.Context, artworkID, tagID uint) (bool, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockArtworkRepository) Create(ctx context.Context, artwork *domain.Artwork) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, artwork)
	}
	return nil
}

func (m *MockArtworkRepository) FindByID(ctx context.Context, id uint) (*domain.Artwork, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArtworkRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Artwork, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *MockArtworkRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]*domain.Artwork, error) {
	if m.FindByCategoryIDFunc != nil {
		return m.FindByCategoryIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *MockArtworkRepository) Update(ctx context.Context, artwork *domain.Artwork) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, artwork)
	}
	return nil
}

func (m *MockArtworkRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockArtworkRepository) AddTag(ctx context.Context, artworkID, tagID uint) error {
	if m.AddTagFunc != nil {
		return m.AddTagFunc(ctx, artworkID, tagID)
	}
	return nil
}

func (m *MockArtworkRepository) RemoveTag(ctx context.Context, artworkID, tagID uint) (bool, error) {
	if m.RemoveTagFunc != nil {
		return m.RemoveTagFunc(ctx, artworkID, tagID)
	}
	return false, nil
}

func (m *MockArtworkRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.User, error)
	FindByLoginFunc func(ctx context.Context, login string) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindAllFunc     func(ctx context.Context, offset, limit int) ([]*domain.User, error)
	UpdateFunc      func(ctx context.Context, user *domain.User) error
	DeleteFunc      func(ctx context.Context, id uint) error
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	if m.FindByLoginFunc != nil {
		return m.FindByLoginFunc(ctx, login)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc          func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Comment, error)
	FindAllFunc         func(ctx context.Context, offset, limit int) ([]*domain.Comment, error)
	FindByArtworkIDFunc func(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Comment, error)
	FindByAuthorIDFunc  func(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Comment, error)
	UpdateFunc          func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc          func(ctx context.Context, id uint) error
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Comment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByArtworkID(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Comment, error) {
	if m.FindByArtworkIDFunc != nil {
		return m.FindByArtworkIDFunc(ctx, artworkID, offset, limit)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByAuthorID(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Comment, error) {
	if m.FindByAuthorIDFunc != nil {
		return m.FindByAuthorIDFunc(ctx, authorID, offset, limit)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	CreateFunc                 func(ctx context.Context, review *domain.Review) error
	FindByIDFunc               func(ctx context.Context, id uint) (*domain.Review, error)
	FindAllFunc                func(ctx context.Context, offset, limit int) ([]*domain.Review, error)
	FindByArtworkIDFunc        func(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Review, error)
	FindByAuthorIDFunc         func(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Review, error)
	FindByAuthorAndArtworkFunc func(ctx context.Context, authorID, artworkID uint) (*domain.Review, error)
	UpdateFunc                 func(ctx context.Context, review *domain.Review) error
	DeleteFunc                 func(ctx context.Context, id uint) error
	CountFunc                  func(ctx context.Context) (int64, error)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	return nil
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReviewRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Review, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *MockReviewRepository) FindByArtworkID(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Review, error) {
	if m.FindByArtworkIDFunc != nil {
		return m.FindByArtworkIDFunc(ctx, artworkID, offset, limit)
	}
	return nil, nil
}

func (m *MockReviewRepository) FindByAuthorID(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Review, error) {
	if m.FindByAuthorIDFunc != nil {
		return m.FindByAuthorIDFunc(ctx, authorID, offset, limit)
	}
	return nil, nil
}

func (m *MockReviewRepository) FindByAuthorAndArtwork(ctx context.Context, authorID, artworkID uint) (*domain.Review, error) {
	if m.FindByAuthorAndArtworkFunc != nil {
		return m.FindByAuthorAndArtworkFunc(ctx, authorID, artworkID)
	}
	return nil, nil
}

func (m *MockReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, review)
	}
	return nil
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockReviewRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockEventRecorder records created entity names
type MockEventRecorder struct {
	mu      sync.Mutex
	Created []string
}

func (m *MockEventRecorder) IncrementEntityCreated(entity string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, entity)
}

// MockPosterStorage is a mock implementation of PosterStorage
type MockPosterStorage struct {
	PresignPosterUploadFunc func(ctx context.Context, artworkID uint, fileName, contentType string, expiry time.Duration) (string, string, error)
}

func (m *MockPosterStorage) PresignPosterUpload(ctx context.Context, artworkID uint, fileName, contentType string, expiry time.Duration) (string, string, error) {
	if m.PresignPosterUploadFunc != nil {
		return m.PresignPosterUploadFunc(ctx, artworkID, fileName, contentType, expiry)
	}
	return "", "", nil
}

func (m *MockPosterStorage) GetFileURL(key string) string {
	return "https://posters.example.com/" + key
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	SignFunc func(userID uint, login string) (string, time.Time, error)
}

func (m *MockTokenIssuer) Sign(userID uint, login string) (string, time.Time, error) {
	if m.SignFunc != nil {
		return m.SignFunc(userID, login)
	}
	return "token", time.Time{}, nil
}

func requireAppError(t *testing.T, err error, code string) *response.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected *response.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
