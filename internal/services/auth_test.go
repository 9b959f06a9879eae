package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"communitycalendar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byEmail map[string]*domain.User
	err     error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: make(map[string]*domain.User)}
	for _, u := range users {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.byEmail), nil
}

// fakeHasher matches when the stored hash is "hash:" + password.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeIssuer returns a deterministic token.
type fakeIssuer struct {
	err error
}

func (f *fakeIssuer) Issue(userID, email string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

func adminUser() *domain.User {
	return &domain.User{
		ID:           "u-1",
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: "hash:correct-horse",
	}
}

func validCreds() domain.Credentials {
	return domain.Credentials{
		Email:         "admin@example.com",
		Password:      "correct-horse",
		CaptchaA:      3,
		CaptchaB:      4,
		CaptchaAnswer: 7,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo(adminUser()), fakeHasher{}, &fakeIssuer{}, time.Hour)

	token, user, err := svc.Login(ctx, validCreds())
	require.NoError(t, err)
	assert.Equal(t, "token-u-1", token)
	require.NotNil(t, user)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestAuthService_Login_normalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo(adminUser()), fakeHasher{}, &fakeIssuer{}, time.Hour)

	creds := validCreds()
	creds.Email = "  ADMIN@Example.com "
	token, _, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*domain.Credentials)
	}{
		{
			name:   "wrong captcha answer",
			mutate: func(c *domain.Credentials) { c.CaptchaAnswer = 8 },
		},
		{
			name:   "unknown email",
			mutate: func(c *domain.Credentials) { c.Email = "nobody@example.com" },
		},
		{
			name:   "wrong password",
			mutate: func(c *domain.Credentials) { c.Password = "wrong" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(newFakeUserRepo(adminUser()), fakeHasher{}, &fakeIssuer{}, time.Hour)
			creds := validCreds()
			tt.mutate(&creds)

			token, user, err := svc.Login(ctx, creds)
			require.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.Empty(t, token)
			assert.Nil(t, user)
		})
	}
}

func TestAuthService_Login_repoFailureIsNotInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(adminUser())
	repo.err = errors.New("db down")
	svc := NewAuthService(repo, fakeHasher{}, &fakeIssuer{}, time.Hour)

	_, _, err := svc.Login(ctx, validCreds())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}
