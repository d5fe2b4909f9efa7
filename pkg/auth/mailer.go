package auth

import "context"

// Mailer delivers the verification message after registration.
type Mailer interface {
	SendVerification(ctx context.Context, email, link string) error
}
