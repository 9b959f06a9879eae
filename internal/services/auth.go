package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"communitycalendar/internal/domain"
)

type authService struct {
	userRepo    domain.UserRepository
	hasher      domain.PasswordHasher
	tokens      domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService with the given repository, hasher, and
// token issuer.
func NewAuthService(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokens domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		userRepo:    userRepo,
		hasher:      hasher,
		tokens:      tokens,
		tokenExpiry: tokenExpiry,
	}
}

// Login verifies the arithmetic challenge first, then the password. Every
// failure mode collapses into ErrInvalidCredentials so callers cannot probe
// which part was wrong.
func (s *authService) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	if creds.CaptchaAnswer != creds.CaptchaA+creds.CaptchaB {
		return "", nil, domain.ErrInvalidCredentials
	}

	email := strings.TrimSpace(strings.ToLower(creds.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}
