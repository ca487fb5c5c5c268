package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpvaldivia/norteexpreso/internal/models"
)

// UserStore looks up operator accounts for authentication.
type UserStore interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Claims are the identity claims embedded in a bearer token. Subject
// carries the user ID.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// UserProfile is the projection returned on login. It never includes
// the password hash.
type UserProfile struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	FullName string    `json:"full_name,omitempty"`
	Email    string    `json:"email,omitempty"`
}

type AuthService struct {
	store  UserStore
	secret []byte
	ttl    time.Duration
}

func NewAuthService(store UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{store: store, secret: []byte(secret), ttl: ttl}
}

// Login validates the credentials and issues a signed HS256 token with
// the configured validity window. Unknown usernames, inactive accounts
// and wrong passwords all fail with the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *UserProfile, error) {
	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("look up user: %w", err)
	}
	if user.Status != models.UserActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	profile := &UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
	if user.Staff != nil {
		profile.FullName = user.Staff.Person.Name + " " + user.Staff.Person.Surname
		profile.Email = user.Staff.Email
	}
	return signed, profile, nil
}

// Verify parses the token and returns its claims, or ErrInvalidToken on
// any signature or expiry failure.
func (s *AuthService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
