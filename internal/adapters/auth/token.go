package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"weddingrsvp/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

type jwtManager struct {
	secret []byte
}

// NewJWTManager returns a TokenIssuer/TokenVerifier pair backed by HS256
// tokens signed with the given secret.
func NewJWTManager(secret string) (domain.TokenIssuer, domain.TokenVerifier) {
	m := &jwtManager{secret: []byte(secret)}
	return m, m
}

func (m *jwtManager) Issue(adminID, username string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Username: username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (m *jwtManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}
