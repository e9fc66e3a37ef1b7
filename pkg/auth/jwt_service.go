package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTService struct {
	secretKey     []byte
	tokenLifespan time.Duration
}

// EditClaims carry the token id that must match the locally persisted
// session marker for the edit capability to hold.
type EditClaims struct {
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

func NewJWTService(secretKey string, tokenLifespan time.Duration) *JWTService {
	return &JWTService{
		secretKey:     []byte(secretKey),
		tokenLifespan: tokenLifespan,
	}
}

func (s *JWTService) TokenLifespan() time.Duration {
	return s.tokenLifespan
}

// GenerateToken issues a fresh edit token and returns it with its id and
// expiry so the caller can persist the session marker.
func (s *JWTService) GenerateToken() (string, string, time.Time, error) {
	tokenID := uuid.NewString()
	expiresAt := time.Now().Add(s.tokenLifespan)

	claims := EditClaims{
		tokenID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   "owner",
			Issuer:    "portfolio-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("cannot sign token: %w", err)
	}

	return signedString, tokenID, expiresAt, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*EditClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &EditClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature algorithm: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(*EditClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("error when parsing token claims")
}
