// Package services contains server-side business logic. This file
// implements UserService: account registration, login, and resolving a
// bearer token into a live account.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akondrashov/stash/internal/common"
	"github.com/akondrashov/stash/internal/server/auth"
	"github.com/akondrashov/stash/internal/server/config"
	"github.com/akondrashov/stash/internal/server/models"
	"github.com/akondrashov/stash/internal/server/repositories/users"
)

// decoyDigest is a valid bcrypt digest of a throwaway value. Login runs a
// verification against it when the account does not exist, so the two
// failure paths take comparable time.
const decoyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService provides authentication-related operations:
//   - Register: create accounts
//   - Login: verify credentials and mint a token
//   - Authenticate: turn an Authorization header into a live account
type UserService struct {
	repo       users.Repository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewUserService constructs a UserService from the account repository and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:       repo,
		jwtSecret:  []byte(cfg.SecretKey),
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account with the given email, password, and
// optional display name. A duplicate email yields common.ErrorConflict;
// the repository runs its duplicate check and insert atomically. The
// returned account carries the digest for internal use; callers building
// responses must use public views only.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Email: email, Name: name, PasswordHash: hash}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, common.ErrorUnavailable
	}

	return created, nil
}

// Login verifies the credentials and, on success, issues an access token
// for the account. An unknown email and a wrong password produce the
// exact same error value, so callers cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string, now time.Time) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrorValidation
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, decoyDigest)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorUnavailable
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, now, s.tokenTTL)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetByID resolves an account identifier to the stored account.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}
	return user, nil
}

// Authenticate turns a raw Authorization header value into a live account.
// The header must consist of exactly two space-separated parts with a
// case-insensitive "bearer" scheme. Every failure satisfies
// errors.Is(err, common.ErrorUnauthorized); the wrapped reason
// (ErrAuthHeaderMissing, ErrAuthSchemeInvalid, token errors,
// ErrAccountGone) stays available for logging and tests.
func (s *UserService) Authenticate(ctx context.Context, header string, now time.Time) (*models.User, error) {
	if header == "" {
		return nil, unauthorized(common.ErrAuthHeaderMissing)
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerScheme) {
		return nil, unauthorized(common.ErrAuthSchemeInvalid)
	}

	userID, err := auth.GetUserIDFromToken(parts[1], s.jwtSecret, now)
	if err != nil {
		return nil, unauthorized(err)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, unauthorized(common.ErrAccountGone)
		}
		return nil, common.ErrorUnavailable
	}

	return user, nil
}

func unauthorized(reason error) error {
	return fmt.Errorf("%w: %w", common.ErrorUnauthorized, reason)
}
