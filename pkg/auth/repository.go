package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email address is not verified yet")
	ErrInvalidVerifyToken = errors.New("invalid or already used verification token")
)

// UserRepository abstracts persistence concerns from the domain layer.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	// MarkVerified flips the flag for the user holding token and clears the
	// token. ErrInvalidVerifyToken when no such user exists.
	MarkVerified(ctx context.Context, token string) (User, error)
}
