// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"foodorder/config"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/service"
	"foodorder/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	defaultMaxPasswordLength = 72
)

// passwordPolicy holds the strength rules a new password must satisfy.
type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy passwordPolicy
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return newBcryptHasher(cost, policyFromConfig(cfg.PasswordStrength))
}

// NewBcryptHasherWithCost builds a hasher with the default policy and an explicit cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return newBcryptHasher(cost, policyFromConfig(nil))
}

func newBcryptHasher(cost int, policy passwordPolicy) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

func policyFromConfig(cfg *config.PasswordStrengthConfig) passwordPolicy {
	policy := passwordPolicy{
		minLength: defaultMinPasswordLength,
		maxLength: defaultMaxPasswordLength,
	}
	if cfg == nil {
		return policy
	}

	if cfg.MinLength > 0 {
		policy.minLength = cfg.MinLength
	}
	if cfg.MaxLength > 0 && cfg.MaxLength < defaultMaxPasswordLength {
		policy.maxLength = cfg.MaxLength
	}
	policy.requireUppercase = cfg.RequireUppercase
	policy.requireLowercase = cfg.RequireLowercase
	policy.requireNumbers = cfg.RequireNumbers
	policy.requireSpecial = cfg.RequireSpecial

	return policy
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash failed")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength returns ErrPasswordStrength with the first failed rule as details.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy

	switch {
	case len(password) < p.minLength:
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must be at least " + strconv.Itoa(p.minLength) + " characters long")
	case len(password) > p.maxLength:
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must be at most " + strconv.Itoa(p.maxLength) + " bytes long")
	case p.requireUppercase && !hasRune(password, unicode.IsUpper):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	case p.requireLowercase && !hasRune(password, unicode.IsLower):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	case p.requireNumbers && !hasRune(password, unicode.IsDigit):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	case p.requireSpecial && !hasRune(password, isSpecial):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}

	return nil
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
