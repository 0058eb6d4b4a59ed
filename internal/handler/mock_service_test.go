package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"media-catalog-api/internal/dto"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, page dto.PaginationQuery) ([]*dto.CategoryResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoryResponse), args.Error(1)
}

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) CreateComment(ctx context.Context, authorID, artworkID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	args := m.Called(ctx, authorID, artworkID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *mockCommentService) GetComment(ctx context.Context, id uint) (*dto.CommentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *mockCommentService) ListComments(ctx context.Context, page dto.PaginationQuery) ([]*dto.CommentResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.CommentResponse), args.Error(1)
}

func (m *mockCommentService) ListArtworkComments(ctx context.Context, artworkID uint, page dto.PaginationQuery) ([]*dto.CommentResponse, error) {
	args := m.Called(ctx, artworkID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.CommentResponse), args.Error(1)
}

func (m *mockCommentService) ListUserComments(ctx context.Context, userID uint, page dto.PaginationQuery) ([]*dto.CommentResponse, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.CommentResponse), args.Error(1)
}

func (m *mockCommentService) UpdateComment(ctx context.Context, id uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, id uint) (*dto.CommentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *mockAuthService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}
