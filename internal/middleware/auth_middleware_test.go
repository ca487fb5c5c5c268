package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpvaldivia/norteexpreso/internal/models"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

type stubUserStore struct {
	user *models.User
}

func (s *stubUserStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, services.ErrNotFound
}

func testToken(t *testing.T, auth *services.AuthService) string {
	t.Helper()
	token, _, err := auth.Login(context.Background(), "seller1", "ventas123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return token
}

func newTestAuth(role models.UserRole, ttl time.Duration) *services.AuthService {
	hash, _ := bcrypt.GenerateFromPassword([]byte("ventas123"), bcrypt.MinCost)
	store := &stubUserStore{user: &models.User{
		ID:           uuid.New(),
		Username:     "seller1",
		PasswordHash: string(hash),
		Status:       models.UserActive,
		Role:         role,
	}}
	return services.NewAuthService(store, "test-secret", ttl)
}

func protectedRouter(auth *services.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/")
	group.Use(JWTAuthMiddleware(auth))
	group.Use(extra...)
	group.GET("/ping", func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	auth := newTestAuth(models.RoleSeller, 8*time.Hour)
	r := protectedRouter(auth)

	// Missing token.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	// Garbage token.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer nope")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}

	// Valid token.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, auth))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", w.Code)
	}
}

func TestJWTAuthMiddlewareRejectsExpired(t *testing.T) {
	auth := newTestAuth(models.RoleSeller, -time.Minute)
	r := protectedRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, auth))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	seller := newTestAuth(models.RoleSeller, 8*time.Hour)
	r := protectedRouter(seller, RequireRole("administrator", "supervisor"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, seller))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for seller on admin route, got %d", w.Code)
	}

	admin := newTestAuth(models.RoleAdministrator, 8*time.Hour)
	r = protectedRouter(admin, RequireRole("administrator", "supervisor"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, admin))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for administrator, got %d", w.Code)
	}
}
