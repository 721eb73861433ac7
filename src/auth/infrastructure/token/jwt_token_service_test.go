package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	service := NewJWTTokenService()
	userID := uuid.New()

	tokenString, err := service.GenerateToken(userID, "admin", []string{"admin", "sales"})
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := service.ValidateToken(tokenString)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, []string{"admin", "sales"}, claims.Roles)
	assert.Equal(t, "sales-service", claims.Issuer)
}

func TestJWTTokenService_RejectsGarbage(t *testing.T) {
	service := NewJWTTokenService()

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsWrongSignature(t *testing.T) {
	service := NewJWTTokenService()

	claims := Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	_, err = service.ValidateToken(forged)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsExpiredToken(t *testing.T) {
	service := NewJWTTokenService()
	service.expiration = -time.Minute

	tokenString, err := service.GenerateToken(uuid.New(), "admin", nil)
	require.NoError(t, err)

	_, err = service.ValidateToken(tokenString)
	assert.Error(t, err)
}
