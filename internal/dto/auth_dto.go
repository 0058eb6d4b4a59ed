package dto

import "time"

// LoginRequest exchanges credentials for an access token
type LoginRequest struct {
	Login    string `json:"login" binding:"required" example:"dada"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// LoginResponse carries a signed access token
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
