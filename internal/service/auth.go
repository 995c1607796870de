package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/herodex/herodex/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("token missing")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 24 * time.Hour

// AuthService validates credentials against the admins table and issues and
// verifies HS256 bearer tokens. Verification is stateless: there is no
// revocation list, so a token stays valid until its expiry instant.
type AuthService struct {
	store  *store.Store
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an AuthService. A zero ttl falls back to
// DefaultTokenTTL.
func NewAuthService(st *store.Store, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{
		store:  st,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// tokenClaims carries the authenticated subject in the "user" claim.
type tokenClaims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// Authenticate checks a username/password pair against the stored bcrypt
// hash and returns a signed token on success. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	admin, err := s.store.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("look up admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(username)
	if err != nil {
		return "", err
	}

	// Stamp last login (fire and forget).
	go s.store.UpdateAdminLastLogin(context.Background(), admin.ID)

	return token, nil
}

// IssueToken creates a signed token for the given subject, expiring after
// the configured TTL.
func (s *AuthService) IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		User: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Issuer:    "herodex",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a bearer token and returns its subject. It fails
// with ErrTokenMissing for an empty token, ErrTokenExpired strictly after
// the expiry instant, and ErrTokenInvalid for anything structurally or
// cryptographically wrong.
func (s *AuthService) VerifyToken(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrTokenMissing
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid {
		return "", ErrTokenInvalid
	}

	return claims.User, nil
}
