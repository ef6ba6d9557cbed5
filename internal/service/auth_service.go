package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"humanatlas/internal/auth"
	apperrors "humanatlas/internal/errors"
	"humanatlas/internal/model"
	"humanatlas/internal/repository"
)

const bcryptCost = 10

// AuthService handles identity and session lifecycle operations.
type AuthService interface {
	// SignUp registers a new user and performs an implicit sign-in,
	// returning the safe projection and a session token.
	SignUp(ctx context.Context, username, password string, region model.Region) (*model.SafeUser, string, error)
	// SignIn authenticates credentials and issues a session token.
	SignIn(ctx context.Context, username, password string) (*model.SafeUser, string, error)
	// SignOut synchronously revokes the session carried by claims.
	SignOut(ctx context.Context, claims *auth.SessionClaims) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// SignUp re-validates the username and password policy server-side even when
// the caller already did; the server check is authoritative.
func (s *authService) SignUp(ctx context.Context, username, password string, region model.Region) (*model.SafeUser, string, error) {
	if username == "" || password == "" || region == "" {
		return nil, "", apperrors.NewValidation("Missing required fields")
	}
	if err := auth.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if strength := auth.CheckPasswordStrength(password); !strength.IsValid {
		return nil, "", apperrors.NewValidation("%s", strength.Err)
	}
	if !model.ValidRegion(region) {
		return nil, "", apperrors.NewValidation("Unknown region")
	}

	// Check-then-insert; the unique index stays authoritative for races.
	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("%w: check username: %v", apperrors.ErrUpstream, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Region:       region,
		LastLogin:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrUsernameTaken
		}
		return nil, "", fmt.Errorf("%w: create user: %v", apperrors.ErrUpstream, err)
	}

	// Implicit sign-in: no second credential round-trip after sign-up.
	safe := user.Safe()
	token, err := s.jwtService.GenerateSessionToken(safe)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return &safe, token, nil
}

// SignIn authenticates a user. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *authService) SignIn(ctx context.Context, username, password string) (*model.SafeUser, string, error) {
	if username == "" || password == "" {
		return nil, "", apperrors.NewValidation("Missing credentials")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	// Best-effort: a failed last-login update never fails the sign-in.
	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		log.Printf("touch last login for %s: %v", username, err)
	}

	safe := user.Safe()
	token, err := s.jwtService.GenerateSessionToken(safe)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return &safe, token, nil
}

// SignOut revokes the session token until its natural expiry.
func (s *authService) SignOut(ctx context.Context, claims *auth.SessionClaims) error {
	remaining := time.Until(claims.ExpiresAt.Time)
	if err := s.tokenStore.DenylistSession(ctx, claims.ID, remaining); err != nil {
		return fmt.Errorf("%w: revoke session: %v", apperrors.ErrUpstream, err)
	}
	return nil
}
