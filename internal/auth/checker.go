package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sharpcut-studio/booking-api/internal/config"
)

var ErrInvalidToken = errors.New("invalid admin token")

// Checker decides whether a bearer token grants admin access. The
// default deployment uses a single shared secret; the interface exists
// so per-user accounts, token expiry or rate limiting can be swapped in
// without touching the gateway handlers.
type Checker interface {
	Check(token string) error
}

// FromConfig picks the checker for the configured auth mode. Unknown
// modes fall back to the static shared secret.
func FromConfig(cfg *config.Config) Checker {
	switch cfg.AdminAuthMode {
	case "bcrypt":
		return NewBcryptTokenChecker(cfg.AdminTokenHash)
	case "jwt":
		return NewJWTChecker(cfg.AdminToken)
	default:
		return NewStaticTokenChecker(cfg.AdminToken)
	}
}

// ===============================
// Static shared secret
// ===============================

type StaticTokenChecker struct {
	secret string
}

func NewStaticTokenChecker(secret string) *StaticTokenChecker {
	return &StaticTokenChecker{secret: strings.TrimSpace(secret)}
}

func (s *StaticTokenChecker) Check(token string) error {
	token = strings.TrimSpace(token)
	if token == "" || s.secret == "" {
		return ErrInvalidToken
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(s.secret)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// ===============================
// Bcrypt-hashed secret
// ===============================

// BcryptTokenChecker keeps only a hash of the admin secret in config,
// so the plaintext never sits in the environment.
type BcryptTokenChecker struct {
	hash string
}

func NewBcryptTokenChecker(hash string) *BcryptTokenChecker {
	return &BcryptTokenChecker{hash: strings.TrimSpace(hash)}
}

func (b *BcryptTokenChecker) Check(token string) error {
	token = strings.TrimSpace(token)
	if token == "" || b.hash == "" {
		return ErrInvalidToken
	}

	if err := bcrypt.CompareHashAndPassword([]byte(b.hash), []byte(token)); err != nil {
		return ErrInvalidToken
	}
	return nil
}
