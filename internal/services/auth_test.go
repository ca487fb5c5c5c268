package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpvaldivia/norteexpreso/internal/models"
)

type memUserStore struct {
	byUsername map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byUsername: map[string]*models.User{}}
}

func (m *memUserStore) add(username, password string, role models.UserRole, status models.UserStatus) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Status:       status,
		Role:         role,
	}
	m.byUsername[username] = u
	return u
}

func (m *memUserStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func TestLoginRoundTrip(t *testing.T) {
	store := newMemUserStore()
	admin := store.add("admin", "admin123", models.RoleAdministrator, models.UserActive)
	svc := NewAuthService(store, "test-secret", 8*time.Hour)

	token, profile, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if profile.Username != "admin" || profile.Role != "administrator" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "administrator" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("user id claim: %v", err)
	}
	if id != admin.ID {
		t.Fatalf("expected subject %s, got %s", admin.ID, id)
	}
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	store := newMemUserStore()
	store.add("admin", "admin123", models.RoleAdministrator, models.UserActive)
	store.add("dormant", "secret99", models.RoleSeller, models.UserInactive)
	svc := NewAuthService(store, "test-secret", 8*time.Hour)

	for name, creds := range map[string][2]string{
		"wrong password": {"admin", "wrong"},
		"unknown user":   {"ghost", "admin123"},
		"inactive user":  {"dormant", "secret99"},
	} {
		_, _, err := svc.Login(context.Background(), creds[0], creds[1])
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	store := newMemUserStore()
	store.add("admin", "admin123", models.RoleAdministrator, models.UserActive)
	expired := NewAuthService(store, "test-secret", -time.Minute)

	token, _, err := expired.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := expired.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	store := newMemUserStore()
	store.add("admin", "admin123", models.RoleAdministrator, models.UserActive)
	svc := NewAuthService(store, "test-secret", 8*time.Hour)

	token, _, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	other := NewAuthService(store, "different-secret", 8*time.Hour)
	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
