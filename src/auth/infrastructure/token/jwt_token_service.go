package token

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultExpiration = 8 * time.Hour

// Claims son los claims del token de acceso
type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTTokenService emite y valida tokens de acceso HS256
type JWTTokenService struct {
	secret     []byte
	expiration time.Duration
}

// NewJWTTokenService crea el servicio de tokens leyendo AUTH_SECRET.
// En desarrollo, sin AUTH_SECRET, usa un secreto fijo NO apto para producción.
func NewJWTTokenService() *JWTTokenService {
	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		secret = "dev-secret-do-not-use-in-production"
	}

	return &JWTTokenService{
		secret:     []byte(secret),
		expiration: defaultExpiration,
	}
}

// GenerateToken emite un token firmado para el usuario
func (s *JWTTokenService) GenerateToken(userID uuid.UUID, username string, roles []string) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			Issuer:    "sales-service",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken verifica la firma y expiración y retorna los claims
func (s *JWTTokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
