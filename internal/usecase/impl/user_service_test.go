package impl

import (
	"context"
	"testing"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/repository"
	mockRepo "farmstay/internal/mocks/repository"
	mockSvc "farmstay/internal/mocks/service"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	return NewUserService(userRepo, hasher, tokenSvc), userRepo, hasher, tokenSvc
}

func TestUserService_Login_Success(t *testing.T) {
	svc, userRepo, hasher, tokenSvc := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(user, nil)
	hasher.EXPECT().Compare("$2a$10$hash", "secret").Return(nil)
	tokenSvc.EXPECT().GenerateTokens(user.ID, []string{"admin"}).Return("access", "refresh", nil)

	tokens, got, err := svc.Login(ctx, "admin@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	assert.Equal(t, user, got)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _ := createTestUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, _, err := svc.Login(ctx, "ghost@example.com", "secret")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, hasher, _ := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "$2a$10$hash"}

	userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(user, nil)
	hasher.EXPECT().Compare("$2a$10$hash", "wrong").Return(errors.New("mismatch"))

	// Same error as unknown email, so login does not leak which accounts exist
	_, _, err := svc.Login(ctx, "admin@example.com", "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_EmptyInput(t *testing.T) {
	svc, _, _, _ := createTestUserService(t)

	_, _, err := svc.Login(context.Background(), "", "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestUserService_Login_RepoError(t *testing.T) {
	svc, userRepo, _, _ := createTestUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(nil, errors.New("db down"))

	_, _, err := svc.Login(ctx, "admin@example.com", "secret")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
