// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"foodorder/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an identity.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the bearer token and the authenticated user.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AuthUsecase defines the identity operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup validates the input, hashes the password and stores a new identity.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
