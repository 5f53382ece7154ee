package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"product-catalog-api/config"
	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/domain/entity"
	"product-catalog-api/internal/usecase"
	"product-catalog-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func newAuthUsecase(t *testing.T, userRepo *MockUserRepository) (usecase.AuthUsecase, *miniredis.Miniredis, *redis.Client, *jwt.JWTService) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	jwtService := testJWTService()
	uc := usecase.NewAuthUsecase(testLogger(), userRepo, jwtService, client, &stubAudit{})
	return uc, mr, client, jwtService
}

func TestAuthUsecase_Logout_DeletesExactKeys(t *testing.T) {
	uc, mr, _, _ := newAuthUsecase(t, new(MockUserRepository))

	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	accessKey := fmt.Sprintf("access_token:%s:token-a", userID.Hex())
	refreshKey := fmt.Sprintf("refresh_token:%s:token-r", userID.Hex())
	otherKey := fmt.Sprintf("access_token:%s:token-b", otherID.Hex())

	require.NoError(t, mr.Set(accessKey, "valid"))
	require.NoError(t, mr.Set(refreshKey, "valid"))
	require.NoError(t, mr.Set(otherKey, "valid"))

	require.NoError(t, uc.Logout(context.Background(), userID, "token-a", "token-r"))

	assert.False(t, mr.Exists(accessKey))
	assert.False(t, mr.Exists(refreshKey))
	assert.True(t, mr.Exists(otherKey))
}

func TestAuthUsecase_Logout_WithoutRefreshToken(t *testing.T) {
	uc, mr, _, _ := newAuthUsecase(t, new(MockUserRepository))

	userID := primitive.NewObjectID()
	accessKey := fmt.Sprintf("access_token:%s:token-a", userID.Hex())
	require.NoError(t, mr.Set(accessKey, "valid"))

	require.NoError(t, uc.Logout(context.Background(), userID, "token-a", ""))

	assert.False(t, mr.Exists(accessKey))
}

func TestAuthUsecase_RefreshToken_RotatesKeys(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc, mr, client, jwtService := newAuthUsecase(t, userRepo)

	userID := primitive.NewObjectID()
	user := &entity.User{ID: userID, Email: "user@example.com"}

	refreshToken, refreshTokenID, err := jwtService.GenerateRefreshToken(userID.Hex(), user.Email)
	require.NoError(t, err)

	oldKey := fmt.Sprintf("refresh_token:%s:%s", userID.Hex(), refreshTokenID)
	require.NoError(t, client.Set(context.Background(), oldKey, "valid", time.Hour).Err())

	userRepo.On("FindByID", mock.Anything, userID).Return(user, nil).Once()

	tokens, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: refreshToken})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// The used refresh token is revoked, a fresh pair is stored.
	assert.False(t, mr.Exists(oldKey))
	var accessKeys, refreshKeys int
	for _, key := range mr.Keys() {
		switch {
		case strings.HasPrefix(key, "access_token:"):
			accessKeys++
		case strings.HasPrefix(key, "refresh_token:"):
			refreshKeys++
		}
	}
	assert.Equal(t, 1, accessKeys)
	assert.Equal(t, 1, refreshKeys)
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_RefreshToken_Revoked(t *testing.T) {
	uc, _, _, jwtService := newAuthUsecase(t, new(MockUserRepository))

	userID := primitive.NewObjectID()
	refreshToken, _, err := jwtService.GenerateRefreshToken(userID.Hex(), "user@example.com")
	require.NoError(t, err)

	// No allow-list entry exists for this token.
	tokens, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: refreshToken})

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, usecase.ErrTokenRevoked)
}
