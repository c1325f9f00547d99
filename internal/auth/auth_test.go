package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jakobj/money-helsinki/internal/models"
)

// memStore is an in-memory UserStore for tests.
type memStore struct {
	users map[string]*models.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*models.User)}
}

func (s *memStore) CreateUser(_ context.Context, user *models.User) error {
	s.users[user.Email] = user
	return nil
}

func (s *memStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return user, nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	authn := NewPasswordAuthenticator(newMemStore())

	user, err := authn.Register(ctx, "alice@example.com", "Alice", "correct horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "correct horse" {
		t.Error("password stored in plain text")
	}

	if _, err := authn.Register(ctx, "alice@example.com", "Alice", "correct horse"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate register err = %v, want ErrEmailExists", err)
	}

	if _, err := authn.Register(ctx, "bob@example.com", "Bob", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak password err = %v, want ErrWeakPassword", err)
	}

	if _, err := authn.Authenticate(ctx, "alice@example.com", "correct horse"); err != nil {
		t.Errorf("Authenticate failed: %v", err)
	}
	if _, err := authn.Authenticate(ctx, "alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := authn.Authenticate(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenManagerRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	user := &models.User{ID: "u1", Email: "alice@example.com"}

	token, err := manager.Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "alice@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenManagerRejectsBadTokens(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	if _, err := manager.Validate("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}

	other := NewTokenManager("other-secret", time.Hour)
	token, err := other.Issue(&models.User{ID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := manager.Validate(token); err == nil {
		t.Error("expected error for token signed with different secret")
	}

	expired := NewTokenManager("test-secret", -time.Minute)
	token, err = expired.Issue(&models.User{ID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := manager.Validate(token); err == nil {
		t.Error("expected error for expired token")
	}
}
