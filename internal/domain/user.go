package domain

import (
	"context"
	"time"
)

// User represents an admin account. The password hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Credentials is a login attempt. The arithmetic challenge operands are
// client-generated; the server only verifies that the answer is their sum.
type Credentials struct {
	Email         string
	Password      string
	CaptchaA      int
	CaptchaB      int
	CaptchaAnswer int
}

// PasswordHasher handles password hashing and verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for admin account storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int, error)
}

// AuthService defines the login flow. It returns ErrInvalidCredentials for any
// failed attempt without distinguishing the cause.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (token string, user *User, err error)
}
