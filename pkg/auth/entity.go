package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing an account. Verified stays false until
// the emailed verification link is followed; login is rejected until then.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Verified     bool
	VerifyToken  string
	CreatedAt    time.Time
}
