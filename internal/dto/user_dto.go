package dto

import "time"

// CreateUserRequest represents the request to register a user
// @Description User creation request
type CreateUserRequest struct {
	Login    string `json:"login" binding:"required,max=255" example:"dada"`
	Password string `json:"password" binding:"required,max=72" example:"secret"`
	Email    string `json:"email" binding:"required,email" example:"qwerty@gmail.com"`
}

// UpdateUserRequest changes a user's password and/or email
// @Description User update request, only password and email can change
type UpdateUserRequest struct {
	Password *string `json:"password,omitempty" binding:"omitempty,min=1,max=72"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}

// UserResponse represents a user with their comments and reviews
// @Description User with comments and reviews, the password is never returned
type UserResponse struct {
	ID        uint              `json:"id" example:"1"`
	Login     string            `json:"login" example:"dada"`
	Email     string            `json:"email" example:"qwerty@gmail.com"`
	CreatedAt time.Time         `json:"created_at"`
	Comments  []CommentResponse `json:"comments"`
	Reviews   []ReviewResponse  `json:"reviews"`
}
