package usecase

import (
	"context"

	"farmstay/internal/domain/entity"
)

// AuthTokens carries a freshly issued access/refresh token pair.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUsecase defines account operations for the admin API.
type UserUsecase interface {
	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*AuthTokens, *entity.User, error)
}
