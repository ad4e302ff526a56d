package impl

import (
	"context"
	"errors"
	"fmt"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/repository"
	"farmstay/internal/domain/service"
	"farmstay/internal/usecase"
)

type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
}

// NewUserService creates a new user service instance.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

// Login verifies credentials and issues a token pair. Unknown email and wrong
// password return the same error so the endpoint does not leak which accounts
// exist.
func (s *userService) Login(ctx context.Context, email, password string) (*usecase.AuthTokens, *entity.User, error) {
	if email == "" || password == "" {
		return nil, nil, domainerrors.ErrInvalidArgument.WithDetails("email and password are required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenSvc.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &usecase.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, user, nil
}
