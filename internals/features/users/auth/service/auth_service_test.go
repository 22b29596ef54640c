package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachfit_backend/internals/configs"
	"coachfit_backend/internals/constants"
	userModel "coachfit_backend/internals/features/users/user/model"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, CheckPassword(hash, "secreto123"))
	assert.False(t, CheckPassword(hash, "otro"))
	assert.False(t, CheckPassword("no-es-un-hash", "secreto123"))
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "Carla",
		UserRole: constants.RoleCoach,
	}

	tokenString, err := GenerateAccessToken(user)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, user.UserID.String(), claims["id"])
	assert.Equal(t, constants.RoleCoach, claims["role"])
	assert.Equal(t, "Carla", claims["name"])

	exp := TokenExpiry(tokenString)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)
}

func TestTokenExpiry_TokenInvalidoUsaTTLPorDefecto(t *testing.T) {
	configs.JWTSecret = "test-secret"
	exp := TokenExpiry("garbage")
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)
}
