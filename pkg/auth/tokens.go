package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Refresh redemption failures. Reuse means the token's jti was already
// rotated away; the caller must revoke the whole user session.
var (
	ErrTokenReused  = errors.New("refresh token already redeemed")
	ErrTokenInvalid = errors.New("refresh token does not match stored hash")
)

// RefreshStore keeps one hashed refresh token per (user, jti) in Redis.
// Only the SHA-256 of the token is stored; a Redis dump never yields a
// usable credential.
type RefreshStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRefreshStore creates a refresh-token store.
func NewRefreshStore(rdb *redis.Client, ttl time.Duration) *RefreshStore {
	return &RefreshStore{rdb: rdb, ttl: ttl}
}

func refreshKey(userID, jti string) string {
	return fmt.Sprintf("refresh:%s:%s", userID, jti)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Save stores the hash of a freshly minted refresh token.
func (s *RefreshStore) Save(ctx context.Context, userID, jti, token string) error {
	if err := s.rdb.Set(ctx, refreshKey(userID, jti), hashToken(token), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Redeem consumes a refresh token exactly once. A missing entry signals
// reuse of a rotated token and revokes every token for the user.
func (s *RefreshStore) Redeem(ctx context.Context, userID, jti, token string) error {
	stored, err := s.rdb.GetDel(ctx, refreshKey(userID, jti)).Result()
	if errors.Is(err, redis.Nil) {
		if revokeErr := s.RevokeAll(ctx, userID); revokeErr != nil {
			return fmt.Errorf("failed to revoke tokens after reuse: %w", revokeErr)
		}
		return ErrTokenReused
	}
	if err != nil {
		return fmt.Errorf("failed to load refresh token: %w", err)
	}
	if stored != hashToken(token) {
		return ErrTokenInvalid
	}
	return nil
}

// Revoke drops a single refresh token, e.g. on logout.
func (s *RefreshStore) Revoke(ctx context.Context, userID, jti string) error {
	if err := s.rdb.Del(ctx, refreshKey(userID, jti)).Err(); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAll drops every refresh token for the user.
func (s *RefreshStore) RevokeAll(ctx context.Context, userID string) error {
	iter := s.rdb.Scan(ctx, 0, refreshKey(userID, "*"), 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete refresh token: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan refresh tokens: %w", err)
	}
	return nil
}
