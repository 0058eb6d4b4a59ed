package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"media-catalog-api/internal/auth"
	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
)

// TokenIssuer signs access tokens, implemented by auth.TokenService
type TokenIssuer interface {
	Sign(userID uint, login string) (string, time.Time, error)
}

// AuthService exchanges credentials for access tokens
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authServiceImpl struct {
	users  UserService
	tokens TokenIssuer
	logger *zap.Logger
}

// NewAuthService creates an AuthService
func NewAuthService(users UserService, tokens TokenIssuer, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.Authenticate(ctx, req.Login, req.Password)
	if err != nil {
		return nil, err
	}

	token, exp, err := s.tokens.Sign(user.ID, user.Login)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, response.NewInternalError("Failed to issue token", err)
	}

	s.logger.Info("User logged in", zap.Uint("user_id", user.ID))
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   auth.TokenType,
		ExpiresAt:   exp,
		User:        *user,
	}, nil
}

// Me resolves the user behind a verified token. A deleted user yields UNAUTHORIZED.
func (s *authServiceImpl) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) && appErr.Code == response.ErrCodeNotFound {
			return nil, response.NewUnauthorizedError("User no longer exists", "")
		}
		return nil, err
	}
	return user, nil
}
