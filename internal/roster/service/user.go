package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
	"github.com/rosterhq/roster/internal/roster/store"
	"github.com/rosterhq/roster/pkg/cryptox"
	"github.com/rosterhq/roster/pkg/idx"
	"github.com/rosterhq/roster/pkg/slogx"
)

// MinPasswordLength applies to signup and invite acceptance alike.
const MinPasswordLength = 8

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("a valid email is required")
	ErrInvalidName        = errors.New("a display name is required")
	ErrWeakPassword       = errors.New("password does not meet the minimum length")
)

type UserService struct {
	Store store.Store
}

// Register creates a standalone account with no memberships. Users who
// arrive through an invite token go through InviteService.AcceptInvite
// instead.
func (s *UserService) Register(ctx context.Context, email, name, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate inputs.
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, ErrInvalidEmail
	}
	if name == "" {
		return domain.User{}, ErrInvalidName
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, ErrWeakPassword
	}

	// 2. Hash the password (argon2id, peppered).
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Insert; the unique email index is the real duplicate gate.
	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserAlreadyExists
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))

	return user, nil
}

// Authenticate verifies email and password. Unknown email and wrong
// password both come back as ErrInvalidCredentials so the response
// does not disclose which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	// Mismatches and malformed stored hashes both answer with the same
	// error so the response does not reveal anything about the account.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetProfile returns the user with all their memberships, each joined
// with its company summary.
func (s *UserService) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	profile, err := s.Store.Users().GetUserProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrUserNotFound
		}
		return domain.Profile{}, err
	}
	return profile, nil
}
