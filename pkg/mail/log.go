package mail

import (
	"context"
	"log"
)

// LogMailer writes verification links to the process log instead of sending
// real mail. Good enough for local and staging environments; production wires
// an SMTP-backed implementation behind the same interface.
type LogMailer struct{}

func NewLogMailer() *LogMailer { return &LogMailer{} }

func (m *LogMailer) SendVerification(_ context.Context, email, link string) error {
	log.Printf("verification mail for %s: %s", email, link)
	return nil
}
