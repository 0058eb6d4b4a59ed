package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"media-catalog-api/internal/domain"
	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
)

func knownUsers(ids ...uint) *MockUserRepository {
	return &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
			for _, known := range ids {
				if known == id {
					return &domain.User{BaseModel: domain.BaseModel{ID: id}, Login: "dada"}, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func knownArtworks(ids ...uint) *MockArtworkRepository {
	return &MockArtworkRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Artwork, error) {
			for _, known := range ids {
				if known == id {
					a := sampleArtwork()
					a.ID = id
					return a, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestCommentService_CreateComment(t *testing.T) {
	tests := []struct {
		name        string
		authorID    uint
		artworkID   uint
		wantErrCode string
	}{
		{name: "success", authorID: 1, artworkID: 1},
		{name: "missing user", authorID: 2, artworkID: 1, wantErrCode: response.ErrCodeNotFound},
		{name: "missing artwork", authorID: 1, artworkID: 2, wantErrCode: response.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := &MockCommentRepository{
				CreateFunc: func(ctx context.Context, comment *domain.Comment) error {
					comment.ID = 10
					return nil
				},
			}
			recorder := &MockEventRecorder{}
			svc := NewCommentService(comments, knownUsers(1), knownArtworks(1), recorder, zap.NewNop())

			got, err := svc.CreateComment(context.Background(), tt.authorID, tt.artworkID, &dto.CreateCommentRequest{
				Text:  "Loved it",
				Likes: 3,
			})
			if tt.wantErrCode != "" {
				requireAppError(t, err, tt.wantErrCode)
				assert.Empty(t, recorder.Created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(10), got.ID)
			assert.Equal(t, tt.authorID, got.AuthorID)
			assert.Equal(t, tt.artworkID, got.ArtworkID)
			assert.Equal(t, 3, got.Likes)
			assert.Equal(t, []string{"comment"}, recorder.Created)
		})
	}
}

func TestCommentService_UpdateComment_PartialFields(t *testing.T) {
	comments := &MockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) {
			return &domain.Comment{BaseModel: domain.BaseModel{ID: id}, Text: "old", Likes: 1, Dislikes: 2, AuthorID: 1, ArtworkID: 1}, nil
		},
	}
	svc := NewCommentService(comments, knownUsers(1), knownArtworks(1), nil, zap.NewNop())

	got, err := svc.UpdateComment(context.Background(), 5, &dto.UpdateCommentRequest{Likes: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, "old", got.Text)
	assert.Equal(t, 9, got.Likes)
	assert.Equal(t, 2, got.Dislikes)
}

func TestCommentService_ListRelations(t *testing.T) {
	var pages [][2]int
	comments := &MockCommentRepository{
		FindByArtworkIDFunc: func(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Comment, error) {
			pages = append(pages, [2]int{offset, limit})
			return []*domain.Comment{{Text: "a", ArtworkID: artworkID}}, nil
		},
		FindByAuthorIDFunc: func(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Comment, error) {
			pages = append(pages, [2]int{offset, limit})
			return []*domain.Comment{{Text: "a", AuthorID: authorID}, {Text: "b", AuthorID: authorID}}, nil
		},
	}
	svc := NewCommentService(comments, knownUsers(1), knownArtworks(1), nil, zap.NewNop())
	ctx := context.Background()

	byArtwork, err := svc.ListArtworkComments(ctx, 1, dto.PaginationQuery{Skip: 2, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, byArtwork, 1)

	byUser, err := svc.ListUserComments(ctx, 1, dto.PaginationQuery{Skip: -1, Limit: 5000})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	assert.Equal(t, [][2]int{{2, 5}, {0, dto.MaxLimit}}, pages)

	_, err = svc.ListArtworkComments(ctx, 2, dto.PaginationQuery{})
	requireAppError(t, err, response.ErrCodeNotFound)

	_, err = svc.ListUserComments(ctx, 2, dto.PaginationQuery{})
	requireAppError(t, err, response.ErrCodeNotFound)
}

func TestReviewService_ListRelations(t *testing.T) {
	var pages [][2]int
	reviews := &MockReviewRepository{
		FindByArtworkIDFunc: func(ctx context.Context, artworkID uint, offset, limit int) ([]*domain.Review, error) {
			pages = append(pages, [2]int{offset, limit})
			return []*domain.Review{{Text: "r", ArtworkID: artworkID}}, nil
		},
		FindByAuthorIDFunc: func(ctx context.Context, authorID uint, offset, limit int) ([]*domain.Review, error) {
			pages = append(pages, [2]int{offset, limit})
			return nil, errors.New("connection reset")
		},
	}
	svc := NewReviewService(reviews, knownUsers(1), knownArtworks(1), nil, zap.NewNop())
	ctx := context.Background()

	byArtwork, err := svc.ListArtworkReviews(ctx, 1, dto.PaginationQuery{})
	require.NoError(t, err)
	assert.Len(t, byArtwork, 1)

	_, err = svc.ListUserReviews(ctx, 1, dto.PaginationQuery{Skip: 3, Limit: 1})
	requireAppError(t, err, response.ErrCodeInternal)

	assert.Equal(t, [][2]int{{0, dto.DefaultLimit}, {3, 1}}, pages)

	_, err = svc.ListArtworkReviews(ctx, 2, dto.PaginationQuery{})
	requireAppError(t, err, response.ErrCodeNotFound)
}

func TestReviewService_CreateReview(t *testing.T) {
	existing := map[[2]uint]bool{{1, 1}: true}
	reviews := &MockReviewRepository{
		FindByAuthorAndArtworkFunc: func(ctx context.Context, authorID, artworkID uint) (*domain.Review, error) {
			if existing[[2]uint{authorID, artworkID}] {
				return &domain.Review{AuthorID: authorID, ArtworkID: artworkID}, nil
			}
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, review *domain.Review) error {
			review.ID = 3
			return nil
		},
	}
	svc := NewReviewService(reviews, knownUsers(1, 2), knownArtworks(1), nil, zap.NewNop())
	ctx := context.Background()

	got, err := svc.CreateReview(ctx, 2, 1, &dto.CreateReviewRequest{Text: "good", Score: 8.5})
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID)
	assert.Equal(t, 8.5, got.Score)

	_, err = svc.CreateReview(ctx, 1, 1, &dto.CreateReviewRequest{Text: "again", Score: 1})
	requireAppError(t, err, response.ErrCodeAlreadyExists)

	_, err = svc.CreateReview(ctx, 9, 1, &dto.CreateReviewRequest{Text: "ghost"})
	requireAppError(t, err, response.ErrCodeNotFound)

	_, err = svc.CreateReview(ctx, 2, 9, &dto.CreateReviewRequest{Text: "nothing"})
	requireAppError(t, err, response.ErrCodeNotFound)
}

func TestReviewService_CreateReview_RaceFallsBackToConflict(t *testing.T) {
	reviews := &MockReviewRepository{
		CreateFunc: func(ctx context.Context, review *domain.Review) error {
			return gorm.ErrDuplicatedKey
		},
	}
	svc := NewReviewService(reviews, knownUsers(1), knownArtworks(1), nil, zap.NewNop())

	_, err := svc.CreateReview(context.Background(), 1, 1, &dto.CreateReviewRequest{Text: "x"})
	requireAppError(t, err, response.ErrCodeAlreadyExists)
}

func TestReviewService_UpdateDelete(t *testing.T) {
	deleted := false
	reviews := &MockReviewRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Review, error) {
			if id != 1 {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Review{BaseModel: domain.BaseModel{ID: 1}, Text: "ok", Score: 5, AuthorID: 1, ArtworkID: 1}, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewReviewService(reviews, knownUsers(1), knownArtworks(1), nil, zap.NewNop())
	ctx := context.Background()

	got, err := svc.UpdateReview(ctx, 1, &dto.UpdateReviewRequest{Score: floatPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Text)
	assert.Equal(t, 7.0, got.Score)

	_, err = svc.UpdateReview(ctx, 2, &dto.UpdateReviewRequest{Text: strPtr("x")})
	requireAppError(t, err, response.ErrCodeNotFound)

	got, err = svc.DeleteReview(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, uint(1), got.ID)
}
