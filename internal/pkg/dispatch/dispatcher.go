// Package dispatch delivers outbound messages to users. The chat transport
// itself lives outside this service; these implementations only speak to its
// boundary (a gateway webhook, or email as a fallback channel).
package dispatch

import "context"

// Dispatcher sends one message to one user. Implementations report failure
// and do not retry; the caller decides what a failed delivery means (for
// scheduled reminders: log and drop, at-most-once per slot).
type Dispatcher interface {
	Deliver(ctx context.Context, chatID string, text string) error
}
