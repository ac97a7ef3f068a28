package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthService issues and checks admin sessions. A session is a server-held
// token with a fixed TTL; the value handed to the client is "token.signature"
// where the signature is an HMAC-SHA256 over the token, so a forged cookie
// fails before the session store is consulted.
type AuthService struct {
	sessions  SessionRepository
	adminCode string
	secret    []byte
	ttl       time.Duration
}

func NewAuthService(sessions SessionRepository, adminCode, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		sessions:  sessions,
		adminCode: adminCode,
		secret:    []byte(secret),
		ttl:       ttl,
	}
}

// Login compares the submitted code in constant time and, on success,
// returns the signed cookie value for a fresh session.
func (s *AuthService) Login(ctx context.Context, code string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.adminCode)) != 1 {
		return "", ErrInvalidCode
	}
	token := uuid.NewString()
	if err := s.sessions.Create(ctx, token, s.ttl); err != nil {
		return "", err
	}
	return s.sign(token), nil
}

func (s *AuthService) Logout(ctx context.Context, cookieValue string) error {
	token, ok := s.verify(cookieValue)
	if !ok {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) IsAdmin(ctx context.Context, cookieValue string) (bool, error) {
	token, ok := s.verify(cookieValue)
	if !ok {
		return false, nil
	}
	return s.sessions.Exists(ctx, token)
}

func (s *AuthService) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return token + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (s *AuthService) verify(cookieValue string) (string, bool) {
	token, signature, found := strings.Cut(cookieValue, ".")
	if !found || token == "" {
		return "", false
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) != 1 {
		return "", false
	}
	return token, true
}
