package dispatch

import (
	"context"
	"fmt"

	"strength-coach-be/internal/pkg/mailer"
)

// EmailLookup resolves a chat id to the user's email address. Returns an
// empty string when the user has no email on file.
type EmailLookup func(ctx context.Context, chatID string) (string, error)

// EmailDispatcher is the fallback channel for deployments without a gateway
// webhook: messages go out as mail to users who left an address.
type EmailDispatcher struct {
	mail   mailer.IEmailService
	lookup EmailLookup
}

var _ Dispatcher = &EmailDispatcher{}

func NewEmailDispatcher(mail mailer.IEmailService, lookup EmailLookup) *EmailDispatcher {
	return &EmailDispatcher{
		mail:   mail,
		lookup: lookup,
	}
}

func (d *EmailDispatcher) Deliver(ctx context.Context, chatID string, text string) error {
	email, err := d.lookup(ctx, chatID)
	if err != nil {
		return fmt.Errorf("dispatch: resolve email for %s: %w", chatID, err)
	}
	if email == "" {
		return fmt.Errorf("dispatch: user %s has no email on file", chatID)
	}
	return d.mail.SendReminder(email, text)
}
