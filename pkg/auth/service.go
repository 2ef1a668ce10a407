package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/user"
)

// Login failures surfaced to the HTTP layer.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account temporarily locked")
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service authenticates users and manages the refresh rotation. Failed
// logins count toward a lockout window persisted on the user row, so the
// limit holds across replicas.
type Service struct {
	client  *ent.Client
	manager *Manager
	store   *RefreshStore

	maxAttempts int
	lockout     time.Duration
}

// NewService creates an authentication service.
func NewService(client *ent.Client, manager *Manager, store *RefreshStore, maxAttempts int, lockout time.Duration) *Service {
	return &Service{
		client:      client,
		manager:     manager,
		store:       store,
		maxAttempts: maxAttempts,
		lockout:     lockout,
	}
}

// Login verifies credentials and issues a token pair. Unknown usernames
// still pay the bcrypt cost so the response time does not leak existence.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	u, err := s.client.User.Query().
		Where(user.UsernameEQ(username)).
		First(ctx)
	if ent.IsNotFound(err) {
		CheckPassword("", password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := time.Now().UTC()
	if u.LockedUntil != nil && u.LockedUntil.After(now) {
		return nil, ErrAccountLocked
	}

	if !CheckPassword(u.PasswordHash, password) {
		if err := s.recordFailure(ctx, u, now); err != nil {
			slog.Error("Failed to record login failure", "user_id", u.ID, "error", err)
		}
		return nil, ErrInvalidCredentials
	}

	if u.FailedLoginAttempts > 0 || u.LockedUntil != nil {
		err := s.client.User.UpdateOne(u).
			SetFailedLoginAttempts(0).
			ClearLockedUntil().
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reset login attempts: %w", err)
		}
	}

	return s.issuePair(ctx, u.ID, u.Username)
}

func (s *Service) recordFailure(ctx context.Context, u *ent.User, now time.Time) error {
	attempts := u.FailedLoginAttempts + 1
	update := s.client.User.UpdateOne(u).SetFailedLoginAttempts(attempts)
	if attempts >= s.maxAttempts {
		update.SetLockedUntil(now.Add(s.lockout)).SetFailedLoginAttempts(0)
		slog.Warn("Account locked after repeated login failures",
			"user_id", u.ID, "attempts", attempts, "lockout", s.lockout)
	}
	return update.Exec(ctx)
}

// Refresh rotates a refresh token: redeems the presented one exactly once
// and issues a fresh pair. Reuse of a rotated token revokes the user's
// whole session set.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.manager.Parse(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrInvalidCredentials
	}

	if err := s.store.Redeem(ctx, claims.Subject, claims.ID, refreshToken); err != nil {
		if errors.Is(err, ErrTokenReused) {
			slog.Warn("Refresh token reuse detected, revoking all sessions",
				"user_id", claims.Subject)
			return nil, ErrInvalidCredentials
		}
		if errors.Is(err, ErrTokenInvalid) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return s.issuePair(ctx, claims.Subject, claims.Username)
}

// Logout revokes the presented refresh token. Already-invalid tokens are
// not an error; logout is idempotent.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.manager.Parse(refreshToken)
	if err != nil {
		return nil
	}
	return s.store.Revoke(ctx, claims.Subject, claims.ID)
}

// LogoutAll revokes every live refresh session for the token's user, so a
// stolen device can be cut off from anywhere the user is still signed in.
func (s *Service) LogoutAll(ctx context.Context, refreshToken string) error {
	claims, err := s.manager.Parse(refreshToken)
	if err != nil {
		return ErrInvalidCredentials
	}
	if claims.TokenType != TokenTypeRefresh {
		return ErrInvalidCredentials
	}
	return s.store.RevokeAll(ctx, claims.Subject)
}

// VerifyAccess parses an access token and returns its claims.
func (s *Service) VerifyAccess(token string) (*Claims, error) {
	claims, err := s.manager.Parse(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("token is not an access token")
	}
	return claims, nil
}

func (s *Service) issuePair(ctx context.Context, userID, username string) (*TokenPair, error) {
	access, err := s.manager.NewAccessToken(userID, username)
	if err != nil {
		return nil, err
	}
	refresh, jti, err := s.manager.NewRefreshToken(userID, username)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, userID, jti, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
