package service

import (
	"time"

	"foodorder/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess marks bearer tokens accepted by the access gate.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
// UserID is recovered from the standard "sub" claim.
type Claims struct {
	UserID uuid.UUID   `json:"-"`
	Role   entity.Role `json:"role"`
	Type   string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed bearer token for the given identity.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration
}
