package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"media-catalog-api/internal/auth"
	"media-catalog-api/internal/domain"
	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/response"
)

// UserService defines the business logic for users
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, page dto.PaginationQuery) ([]*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uint) (*dto.UserResponse, error)
	Authenticate(ctx context.Context, login, password string) (*dto.UserResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	recorder EventRecorder
	logger   *zap.Logger
}

// NewUserService creates a UserService
func NewUserService(userRepo repository.UserRepository, recorder EventRecorder, logger *zap.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		recorder: recorderOrNoop(recorder),
		logger:   logger,
	}
}

// CreateUser rejects a login or email that is already registered and stores a bcrypt hash
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := s.userRepo.FindByLogin(ctx, req.Login)
	if err != nil {
		s.logger.Error("Failed to check login", zap.Error(err))
		return nil, response.NewInternalError("Failed to check login", err)
	}
	if existing != nil {
		return nil, response.NewConflictError(fmt.Sprintf("User with login '%s' already exists", req.Login), "")
	}

	if err := s.ensureEmailAvailable(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, response.NewInternalError("Failed to create user", err)
	}

	user := &domain.User{
		Login:        req.Login,
		PasswordHash: hash,
		Email:        req.Email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, writeError(s.logger, err, "User with this login or email already exists", "Failed to create user")
	}

	s.recorder.IncrementEntityCreated("user")
	s.logger.Info("User created", zap.Uint("user_id", user.ID), zap.String("login", user.Login))

	return toUserResponse(user), nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "User not found")
	}
	return toUserResponse(user), nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, page dto.PaginationQuery) ([]*dto.UserResponse, error) {
	page = page.Normalize()

	users, err := s.userRepo.FindAll(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, response.NewInternalError("Failed to list users", err)
	}

	responses := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		responses[i] = toUserResponse(u)
	}
	return responses, nil
}

// UpdateUser changes only the password and email; the login is immutable
func (s *userServiceImpl) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "User not found")
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.ensureEmailAvailable(ctx, *req.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			s.logger.Error("Failed to hash password", zap.Error(err))
			return nil, response.NewInternalError("Failed to update user", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, writeError(s.logger, err, "User with this email already exists", "Failed to update user")
	}
	return toUserResponse(user), nil
}

// DeleteUser removes the user with their comments and reviews
func (s *userServiceImpl) DeleteUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, err, "User not found")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete user", zap.Uint("user_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to delete user", err)
	}
	return toUserResponse(user), nil
}

// Authenticate verifies credentials. Unknown logins and wrong passwords are indistinguishable.
func (s *userServiceImpl) Authenticate(ctx context.Context, login, password string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		s.logger.Error("Failed to load user for login", zap.Error(err))
		return nil, response.NewInternalError("Failed to authenticate", err)
	}
	if user == nil {
		return nil, response.NewUnauthorizedError("Invalid login or password", "")
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("Stored password hash is unreadable", zap.Uint("user_id", user.ID), zap.Error(err))
		}
		return nil, response.NewUnauthorizedError("Invalid login or password", "")
	}

	return toUserResponse(user), nil
}

func (s *userServiceImpl) ensureEmailAvailable(ctx context.Context, email string, selfID uint) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check email", zap.Error(err))
		return response.NewInternalError("Failed to check email", err)
	}
	if existing != nil && existing.ID != selfID {
		return response.NewConflictError(fmt.Sprintf("User with email '%s' already exists", email), "")
	}
	return nil
}
