// Package auth implements the JWT/API-key surface: token minting,
// password verification, and the Redis-backed refresh-token store.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the custom claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the signed payload of both access and refresh tokens.
type Claims struct {
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a shared HMAC secret.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager creates a token manager. The secret must be non-empty.
func NewManager(secret string, accessTTL, refreshTTL time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret must not be empty")
	}
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// NewAccessToken mints a short-lived access token for the user.
func (m *Manager) NewAccessToken(userID, username string) (string, error) {
	token, _, err := m.mint(userID, username, TokenTypeAccess, m.accessTTL)
	return token, err
}

// NewRefreshToken mints a refresh token and returns it with its jti, which
// keys the server-side store entry.
func (m *Manager) NewRefreshToken(userID, username string) (string, string, error) {
	return m.mint(userID, username, TokenTypeRefresh, m.refreshTTL)
}

func (m *Manager) mint(userID, username, tokenType string, ttl time.Duration) (string, string, error) {
	now := time.Now().UTC()
	jti := uuid.New().String()
	claims := Claims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, jti, nil
}

// Parse verifies the signature and expiry and returns the claims.
func (m *Manager) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// LooksLikeJWT reports whether a credential is shaped like a signed JWT
// rather than an opaque API key. Base64 JSON headers always start "eyJ".
func LooksLikeJWT(credential string) bool {
	return strings.HasPrefix(credential, "eyJ") && strings.Count(credential, ".") == 2
}
